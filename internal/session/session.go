// Package session drives a pet through time for an interactive front end.
// The front end calls Tick on every frame, forwards input through Handle and
// calls Save when the player quits; everything it needs to draw comes back in
// a Frame.
package session

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/motion"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/registry"
	"github.com/vovakirdan/tui-pet/internal/save"
	"github.com/vovakirdan/tui-pet/internal/sprite"
)

// DefaultPopupDuration is how long a popup blocks further care actions.
const DefaultPopupDuration = 1500 * time.Millisecond

// DefaultName is given to pets adopted without a name.
const DefaultName = "friend"

// LifeRecord describes a pet for the history log.
type LifeRecord struct {
	PetID   string
	Name    string
	Species string
	Color   core.Color
	Stage   pet.GrowthStage
	Born    time.Time
	Died    time.Time // zero while alive
	Cause   pet.Cause
}

// Recorder keeps a history of adopted and deceased pets.
// This allows the session to log lifecycles without a direct storage dependency.
type Recorder interface {
	RecordAdoption(rec LifeRecord) error
	RecordDeath(rec LifeRecord) error
}

// Options configures a Session.
type Options struct {
	Store         *save.Store
	History       Recorder // optional
	Playground    core.Rect
	PopupDuration time.Duration
	Rand          *rand.Rand
	Logger        *log.Logger
}

// Frame is the read-model handed to the renderer after every tick.
type Frame struct {
	Name          string
	Species       string
	Color         core.Color
	Stage         pet.GrowthStage
	Age           time.Duration
	AgeHours      int
	Alive         bool
	Asleep        bool
	CauseOfDeath  pet.Cause
	Stats         pet.Stats
	Location      core.Location
	Playground    core.Rect
	Sprite        sprite.Sprite
	Popup         Popup
	Selected      int
	Actions       []core.CareAction
	NeedsAdoption bool
}

// Session owns the game state and the motion generator of the current pet.
// It is not safe for concurrent use.
type Session struct {
	store      *save.Store
	history    Recorder
	playground core.Rect
	popupFor   time.Duration
	rng        *rand.Rand
	logger     *log.Logger

	state         *save.GameState
	prevStage     pet.GrowthStage
	motion        motion.Generator
	popup         Popup
	popupUntil    time.Time
	selected      int
	needsAdoption bool
	deathRecorded bool
}

// New creates a session with no pet loaded. Call Load or Adopt next.
func New(opts Options) *Session {
	s := &Session{
		store:         opts.Store,
		history:       opts.History,
		playground:    opts.Playground,
		popupFor:      opts.PopupDuration,
		rng:           opts.Rand,
		logger:        opts.Logger,
		needsAdoption: true,
	}
	if s.store == nil {
		s.store = save.NewStore(save.DefaultPath)
	}
	if s.playground.W <= 0 || s.playground.H <= 0 {
		s.playground = core.DefaultPlayground()
	}
	if s.popupFor <= 0 {
		s.popupFor = DefaultPopupDuration
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Load restores the saved pet and replays the time since it was saved. A
// missing or unreadable save file is not an error: the session then waits
// for Adopt.
func (s *Session) Load(now time.Time) error {
	gs, err := s.store.Read()
	switch {
	case err == nil:
	case errors.Is(err, save.ErrNotFound):
		s.logger.Info("no save file, waiting for adoption", "path", s.store.Path())
		s.needsAdoption = true
		return nil
	case errors.Is(err, save.ErrCorrupt):
		s.logger.Warn("ignoring unreadable save file", "path", s.store.Path(), "error", err)
		s.needsAdoption = true
		return nil
	default:
		return err
	}

	if !registry.Exists(gs.Pet.Species()) {
		s.logger.Warn("unknown species, drawing the default", "species", gs.Pet.Species(), "default", registry.DefaultSpecies)
	}

	offline := now.Sub(gs.LastUpdateTime)
	s.install(gs, now)
	s.logger.Info("loaded pet", "name", gs.Pet.Name(), "stage", gs.Pet.Stage(), "offline", offline.Round(time.Second))

	if !gs.Pet.Alive() {
		s.onDeath(now)
	}
	return nil
}

// Adopt replaces the current pet with a new egg of a random species and color.
func (s *Session) Adopt(name string, now time.Time) *pet.Pet {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	species := registry.Random(s.rng)
	p := pet.New(name, species.ID, core.RandomPetColor(s.rng), now)
	s.install(&save.GameState{Pet: p, LastUpdateTime: pet.Millis(now)}, now)
	s.deathRecorded = false
	s.popup = PopupNone
	s.popupUntil = time.Time{}
	s.selected = 0

	s.logger.Info("adopted pet", "name", p.Name(), "species", species.ID, "color", p.Color())
	if s.history != nil {
		if err := s.history.RecordAdoption(lifeRecord(p, time.Time{})); err != nil {
			s.logger.Warn("cannot record adoption", "error", err)
		}
	}
	return p
}

func (s *Session) install(gs *save.GameState, now time.Time) {
	gs.Pet.UpdateState(now)
	s.state = gs
	s.prevStage = gs.Pet.Stage()
	s.needsAdoption = false
	s.rebuildMotion(now)
}

func (s *Session) rebuildMotion(now time.Time) {
	ext := s.sprite().Extents()
	s.motion = motion.For(s.prevStage, s.playground, ext, now, s.rng)
}

func (s *Session) sprite() sprite.Sprite {
	if s.state == nil {
		return sprite.Egg
	}
	return registry.SpriteFor(s.state.Pet.Stage(), s.state.Pet.Species())
}

// Tick advances the pet to now and returns what to draw.
func (s *Session) Tick(now time.Time) Frame {
	if s.state != nil && !s.needsAdoption {
		p := s.state.Pet
		p.UpdateState(now)

		switch {
		case !p.Alive():
			s.onDeath(now)
		case p.Stage() != s.prevStage:
			s.logger.Info("pet grew", "name", p.Name(), "from", s.prevStage, "to", p.Stage())
			s.prevStage = p.Stage()
			s.rebuildMotion(now)
		}
	}

	if s.popup != PopupNone && !now.Before(s.popupUntil) {
		s.popup = PopupNone
		s.popupUntil = time.Time{}
	}

	return s.frame(now)
}

// Settle ticks at now until the pet stops growing. Growth moves one stage per
// tick, so a one-shot report after a long absence would otherwise show a
// stage the pet has already left.
func (s *Session) Settle(now time.Time) Frame {
	f := s.Tick(now)
	for i := 0; i < int(pet.StageAdult); i++ {
		next := s.Tick(now)
		if next.Stage == f.Stage {
			return next
		}
		f = next
	}
	return f
}

func (s *Session) onDeath(now time.Time) {
	s.needsAdoption = true
	if s.deathRecorded {
		return
	}
	s.deathRecorded = true

	p := s.state.Pet
	s.logger.Info("pet died", "name", p.Name(), "cause", p.CauseOfDeath(), "age", p.Age(now).Round(time.Minute))
	if s.history != nil {
		if err := s.history.RecordDeath(lifeRecord(p, pet.Millis(now))); err != nil {
			s.logger.Warn("cannot record death", "error", err)
		}
	}
}

// Handle applies an input action. It reports whether the pet changed.
// ActionQuit is left to the caller, which is expected to Save.
func (s *Session) Handle(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionUp:
		s.selected = core.Max(s.selected-1, 0)
	case core.ActionDown:
		s.selected = core.Min(s.selected+1, len(core.CareActions)-1)
	case core.ActionConfirm:
		return s.dispatch(core.CareActions[s.selected], nil, now)
	}
	return false
}

// Feed serves a specific food, subject to the same rules as the Eat action.
func (s *Session) Feed(food pet.Food, now time.Time) bool {
	return s.dispatch(core.CareEat, &food, now)
}

func (s *Session) dispatch(action core.CareAction, food *pet.Food, now time.Time) bool {
	if s.state == nil || s.needsAdoption {
		return false
	}
	if s.popupActive(now) {
		s.logger.Debug("action dropped during popup", "action", action, "popup", s.popup)
		return false
	}

	popup, ok := Dispatch(s.state.Pet, action, food, now, s.rng)
	if !ok {
		s.logger.Debug("action ignored", "action", action, "stage", s.state.Pet.Stage(), "asleep", s.state.Pet.Asleep())
		return false
	}

	s.logger.Debug("action applied", "action", action, "stats", s.state.Pet.Stats())
	if popup != PopupNone {
		s.popup = popup
		s.popupUntil = now.Add(s.popupFor)
	}
	return true
}

func (s *Session) popupActive(now time.Time) bool {
	return s.popup != PopupNone && now.Before(s.popupUntil)
}

// Save writes the current pet to the save file. Without a pet it does
// nothing.
func (s *Session) Save(now time.Time) error {
	if s.state == nil {
		return nil
	}
	if err := s.store.Write(s.state, now); err != nil {
		return err
	}
	s.logger.Info("saved", "path", s.store.Path(), "name", s.state.Pet.Name())
	return nil
}

// Pet returns the current pet, or nil before Load or Adopt found one.
func (s *Session) Pet() *pet.Pet {
	if s.state == nil {
		return nil
	}
	return s.state.Pet
}

// NeedsAdoption reports whether the front end should run the adoption flow.
func (s *Session) NeedsAdoption() bool {
	return s.needsAdoption
}

// Playground returns the motion bounds.
func (s *Session) Playground() core.Rect {
	return s.playground
}

func (s *Session) frame(now time.Time) Frame {
	f := Frame{
		Playground:    s.playground,
		Popup:         s.popup,
		Selected:      s.selected,
		Actions:       core.CareActions,
		NeedsAdoption: s.needsAdoption,
		Sprite:        s.sprite(),
	}
	if s.state == nil {
		return f
	}

	p := s.state.Pet
	f.Name = p.Name()
	f.Species = p.Species()
	f.Color = p.Color()
	f.Stage = p.Stage()
	f.Age = p.Age(now)
	f.AgeHours = int(f.Age.Hours())
	f.Alive = p.Alive()
	f.Asleep = p.Asleep()
	f.CauseOfDeath = p.CauseOfDeath()
	f.Stats = p.Stats()

	// A sleeping pet lies still in the middle of the playground.
	if p.Asleep() {
		ext := f.Sprite.Extents()
		f.Location = s.playground.Center().Translate(-ext.W/2, -ext.H/2)
	} else if s.motion != nil {
		f.Location = s.motion.Next(now)
	}
	return f
}

func lifeRecord(p *pet.Pet, died time.Time) LifeRecord {
	return LifeRecord{
		PetID:   p.ID(),
		Name:    p.Name(),
		Species: p.Species(),
		Color:   p.Color(),
		Stage:   p.Stage(),
		Born:    p.Created(),
		Died:    died,
		Cause:   p.CauseOfDeath(),
	}
}
