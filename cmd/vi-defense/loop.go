package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-defense/audio"
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/input"
	"github.com/lixenwraith/vi-defense/render"
	"github.com/lixenwraith/vi-defense/session"
)

// gameLoop is the single owner of the session between input and ticks
type gameLoop struct {
	session    *session.Session
	translator *input.Translator
	renderer   *render.TerminalRenderer
	sounds     *audio.SoundManager
	resize     func()
}

// run polls input on a separate goroutine and ticks the session on a fixed interval
// All session access happens on the calling goroutine
func (g *gameLoop) run(screen tcell.Screen, interval time.Duration) {
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	g.draw()
	for !g.session.Done() {
		select {
		case ev := <-eventChan:
			g.handle(ev)
		case <-ticker.C:
			g.tick()
		}
	}
}

// handle translates one terminal event, feeds the session and redraws
func (g *gameLoop) handle(ev tcell.Event) {
	in := g.translator.Translate(ev)
	switch in.Type {
	case input.IntentNone:
		return
	case input.IntentToggleMute:
		muted := g.sounds.ToggleMute()
		log.WithField("muted", muted).Debug("sound toggled")
	case input.IntentResize:
		if g.resize != nil {
			g.resize()
		}
	default:
		if cmd, ok := input.Command(in, g.session.Phase()); ok {
			g.session.Push(cmd)
		}
	}
	g.session.Process()
	g.draw()
}

// tick runs one simulation step; the session ignores it outside an active wave
func (g *gameLoop) tick() {
	g.session.Tick()
	g.session.Process()
	g.draw()
}

func (g *gameLoop) draw() {
	if g.session.Done() {
		return
	}
	g.renderer.RenderFrame(render.Frame{
		View:   g.session.View(),
		Cursor: g.translator.Cursor(),
		Muted:  g.sounds.Muted(),
	})
}
