// Popupdemo opens a window with one popup over a patterned background.
// Space closes the popup, or reopens it once it is gone; escape closes it
// too. Drag the title bar to move it. Options come from a YAML file and can
// be overridden by flags.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/popup"
	"github.com/spf13/cobra"
	"github.com/tanema/gween"
)

const (
	windowTitle = "Popup Demo"
	screenW     = 800
	screenH     = 600
	titleBarH   = 28
)

type flags struct {
	config      string
	script      string
	store       string
	width       float64
	height      float64
	noAnimation bool
	noShield    bool
	debug       bool
}

type demo struct {
	doc   *popup.Document
	opts  popup.Options
	p     *popup.Popup
	title *popup.Element
	pulse *gween.Tween
}

func main() {
	var f flags
	cmd := &cobra.Command{
		Use:   "popupdemo",
		Short: "Show an animated, draggable popup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML popup options file")
	cmd.Flags().StringVar(&f.script, "script", "", "JSON test script to play")
	cmd.Flags().StringVar(&f.store, "store", "", "gdata app name for remembering the popup position")
	cmd.Flags().Float64Var(&f.width, "width", 360, "popup width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", 220, "popup height in pixels")
	cmd.Flags().BoolVar(&f.noAnimation, "no-animation", false, "open and close instantly")
	cmd.Flags().BoolVar(&f.noShield, "no-shield", false, "do not dim the background")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log lifecycle transitions to stderr")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f flags) error {
	opts := popup.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = popup.LoadOptionsFile(f.config); err != nil {
			return err
		}
	}
	if f.config == "" || cmd.Flags().Changed("width") {
		opts.Width = f.width
	}
	if f.config == "" || cmd.Flags().Changed("height") {
		opts.Height = f.height
	}
	if f.noAnimation {
		opts.Animation = popup.NoAnimation
	}
	if f.noShield {
		opts.Shield = false
	}
	if opts.Name == "" {
		opts.Name = "demo"
	}
	if !opts.Draggable {
		opts.Draggable = true
		opts.DraggableHeight = titleBarH
	}
	if f.store != "" {
		opts.Store = popup.OpenPositionStore(f.store)
	}

	doc := popup.NewDocument(screenW, screenH)
	doc.ClearColor = popup.Color{R: 0.12, G: 0.13, B: 0.17, A: 1}
	doc.SetDebugMode(f.debug)
	addBackground(doc)

	if f.script != "" {
		data, err := os.ReadFile(f.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := popup.LoadTestScript(data)
		if err != nil {
			return err
		}
		doc.SetTestRunner(runner)
	}

	d := &demo{doc: doc, opts: opts}
	d.open()
	doc.SetUpdateFunc(d.update)

	return popup.Run(doc, popup.RunConfig{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	})
}

// addBackground fills the body with a grid of tiles so the shield is visible.
func addBackground(doc *popup.Document) {
	const tile = 40
	for y := 0; y < screenH/tile; y++ {
		for x := 0; x < screenW/tile; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			e := popup.NewElement(fmt.Sprintf("tile-%d-%d", x, y), tile, tile)
			e.X, e.Y = float64(x*tile), float64(y*tile)
			e.Color = popup.Color{R: 0.2, G: 0.22, B: 0.3, A: 1}
			e.Interactable = false
			doc.Body().AddChild(e)
		}
	}
}

func (d *demo) open() {
	content := popup.NewElement("dialog", 0, 0)
	content.Color = popup.Color{R: 0.93, G: 0.93, B: 0.88, A: 1}

	title := popup.NewElement("title", d.opts.Width, titleBarH)
	title.Position = popup.PositionAbsolute
	title.Color = popup.Color{R: 0.25, G: 0.45, B: 0.75, A: 1}
	title.Interactable = false
	content.AddChild(title)
	d.title = title

	p := popup.New(d.doc, content, d.opts)
	p.OnShown(func() {
		d.pulse = gween.New(0.45, 0.75, 1.2, popup.EaseTween)
	})
	p.OnDestroyed(func() {
		d.pulse = nil
		log.Printf("popup %q destroyed", d.opts.Name)
	})
	p.Show()
	d.p = p
}

func (d *demo) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch d.p.State() {
		case popup.StateShown:
			d.p.Close()
		case popup.StateClosed:
			if d.p.Animation() == nil {
				d.open()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.p.Close()
	}

	if d.pulse != nil {
		v, done := d.pulse.Update(float32(1.0 / float64(ebiten.TPS())))
		d.title.Color.B = float64(v)
		if done {
			d.pulse.Reset()
		}
	}
	return nil
}
