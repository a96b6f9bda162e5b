// Package popup shows modal-style popups for [Ebitengine] games and tools.
//
// A popup is an [Element] drawn above an optional dimming shield. Opening
// and closing are animated with an eased, reversible transition: closing a
// popup halfway through its opening animation plays it back from exactly
// where it is, without a jump.
//
// # Quick start
//
//	doc := popup.NewDocument(640, 480)
//
//	content := popup.NewElement("dialog", 0, 0)
//	content.Color = popup.Color{R: 0.95, G: 0.95, B: 0.9, A: 1}
//
//	opts := popup.DefaultOptions()
//	opts.Width, opts.Height = 320, 200
//	opts.Draggable, opts.DraggableHeight = true, 24
//
//	p := popup.New(doc, content, opts)
//	p.OnDestroyed(func() { log.Println("gone") })
//	p.Show()
//
//	popup.Run(doc, popup.RunConfig{Title: "Popup", Width: 640, Height: 480})
//
// For full control, call [Document.Update], [Document.Draw] and
// [Document.Layout] from your own [ebiten.Game].
//
// # Document
//
// A [Document] owns the element tree popups attach to, the viewport size,
// the body scroll state and a frame queue. [Document.RequestFrame] queues a
// callback for the next Update, the way a browser's requestAnimationFrame
// does; animations advance only through it. The [Clock] the document reads
// is replaceable, so tests drive time by hand.
//
// # Lifecycle
//
// A [Popup] moves from [StateInitial] to [StateShown] on [Popup.Show] and to
// [StateClosed] on [Popup.Close]; each happens once and repeated calls are
// ignored. [Popup.OnShown] fires when the open transition finishes and
// [Popup.OnDestroyed] when the popup has been detached.
//
// Options can be loaded from YAML with [LoadOptions], and dragged positions
// survive restarts through a [PositionStore] (backed by [gdata]).
//
// [Ebitengine]: https://ebitengine.org
// [gdata]: https://github.com/quasilyte/gdata
package popup
