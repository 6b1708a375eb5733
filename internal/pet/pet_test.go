package pet

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-pet/internal/core"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

var petCmp = cmp.AllowUnexported(Pet{}, Stat{})

// adultAt returns a grown pet whose decay cursors all sit at now.
func adultAt(now time.Time) *Pet {
	p := New("Waldo", "duck", core.ColorCyan, now.Add(-AdultAge-time.Hour))
	p.stage = StageAdult
	now = Millis(now)
	p.lastFoodTick = now
	p.lastJoyTick = now
	p.lastEnergyTick = now
	p.lastHealthTick = now
	return p
}

func setStats(p *Pet, s Stats) {
	p.food = mustStat(s.Food)
	p.joy = mustStat(s.Joy)
	p.energy = mustStat(s.Energy)
	p.health = mustStat(s.Health)
}

func TestNewPet(t *testing.T) {
	p := New("Waldo", "duck", core.ColorRed, t0)

	if p.Stage() != StageEgg {
		t.Errorf("new pet stage = %s, expected egg", p.Stage())
	}
	want := Stats{Food: 50, Joy: 50, Energy: 50, Health: 50}
	if p.Stats() != want {
		t.Errorf("Stats() = %+v, expected %+v", p.Stats(), want)
	}
	if !p.Alive() || p.Asleep() {
		t.Error("new pet should be alive and awake")
	}
	if p.ID() == "" {
		t.Error("new pet should have an id")
	}
	if other := New("Waldo", "duck", core.ColorRed, t0); other.ID() == p.ID() {
		t.Error("pets should get distinct ids")
	}
}

func TestEggIgnoresTimeAndActions(t *testing.T) {
	p := New("Waldo", "duck", core.ColorRed, t0)
	now := t0.Add(4 * time.Minute)

	p.UpdateState(now)
	p.ToggleSleep(now)
	p.Feed(FoodBurger)
	p.Play()
	p.TakeMedicine()

	if p.Stage() != StageEgg {
		t.Fatalf("stage = %s, expected egg", p.Stage())
	}
	want := Stats{Food: 50, Joy: 50, Energy: 50, Health: 50}
	if p.Stats() != want {
		t.Errorf("Stats() = %+v, expected %+v", p.Stats(), want)
	}
	if p.Asleep() {
		t.Error("egg must not fall asleep")
	}
	if p.HealthDebt() != 0 {
		t.Errorf("HealthDebt() = %v, expected 0", p.HealthDebt())
	}
}

func TestGrowthOneStepPerUpdate(t *testing.T) {
	p := New("Waldo", "duck", core.ColorRed, t0)
	now := t0.Add(24*time.Hour + time.Second)

	expected := []GrowthStage{StageBaby, StageKid, StageAdult, StageAdult}
	for i, want := range expected {
		p.UpdateState(now)
		if p.Stage() != want {
			t.Fatalf("after update %d stage = %s, expected %s", i+1, p.Stage(), want)
		}
	}
}

func TestGrowthThresholds(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want GrowthStage
	}{
		{"just before baby", BabyAge - time.Millisecond, StageEgg},
		{"exactly baby", BabyAge, StageBaby},
		{"just before kid", KidAge - time.Millisecond, StageBaby},
		{"exactly kid", KidAge, StageKid},
		{"just before adult", AdultAge - time.Millisecond, StageKid},
		{"exactly adult", AdultAge, StageAdult},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New("Waldo", "duck", core.ColorRed, t0)
			setStats(p, Stats{Food: 100, Joy: 100, Energy: 100, Health: 100})
			for i := 0; i < 4; i++ {
				p.UpdateState(t0.Add(tc.age))
			}
			if p.Stage() != tc.want {
				t.Errorf("stage at age %v = %s, expected %s", tc.age, p.Stage(), tc.want)
			}
		})
	}
}

func TestAutoWakeDuringCatchUp(t *testing.T) {
	t1 := t0.Add(48 * time.Hour)
	p := adultAt(t1)
	setStats(p, Stats{Food: 100, Joy: 100, Energy: 100, Health: 100})

	p.ToggleSleep(t1)
	if !p.Asleep() {
		t.Fatal("pet should be asleep after ToggleSleep")
	}

	p.UpdateState(t1.Add(MaxSleep + 100*time.Millisecond))

	if p.Asleep() {
		t.Fatal("pet should have woken up after 12 hours")
	}
	if _, asleep := p.AsleepSince(); asleep {
		t.Error("AsleepSince should be cleared on waking")
	}
	// The first quantum regenerates (saturating at 100), the remaining 59 decay.
	if got := p.Stats().Energy; got != 41 {
		t.Errorf("energy = %d, expected 41", got)
	}
}

func TestLongAbsenceKillsPet(t *testing.T) {
	t1 := t0.Add(48 * time.Hour)
	p := adultAt(t1)
	setStats(p, Stats{Food: 100, Joy: 100, Energy: 100, Health: 100})
	p.ToggleSleep(t1)

	p.UpdateState(t1.Add(120 * time.Hour))

	s := p.Stats()
	if s.Energy != 0 || s.Food != 0 || s.Joy != 0 {
		t.Errorf("Stats() = %+v, expected food, joy and energy at 0", s)
	}
	if s.Health != 100 {
		t.Errorf("health = %d, expected 100 without debt", s.Health)
	}
	if p.Alive() {
		t.Fatal("pet should be dead")
	}
	if p.CauseOfDeath() != CauseNeglect {
		t.Errorf("CauseOfDeath() = %q, expected %q", p.CauseOfDeath(), CauseNeglect)
	}
}

func TestFeedChargesHealthDebt(t *testing.T) {
	p := adultAt(t0)
	setStats(p, Stats{Food: 50, Joy: 50, Energy: 50, Health: 100})

	p.Feed(FoodBurger)
	if got := p.Stats().Food; got != 90 {
		t.Fatalf("food after burger = %d, expected 90", got)
	}
	if p.HealthDebt() != 13*time.Minute {
		t.Fatalf("HealthDebt() = %v, expected 13m", p.HealthDebt())
	}

	p.UpdateState(t0.Add(13 * time.Minute))

	s := p.Stats()
	if s.Food != 90 {
		t.Errorf("food = %d, expected 90 (less than one quantum elapsed)", s.Food)
	}
	if s.Health != 87 {
		t.Errorf("health = %d, expected 87", s.Health)
	}
	if p.HealthDebt() != 0 {
		t.Errorf("HealthDebt() = %v, expected 0", p.HealthDebt())
	}
}

func TestActionEffects(t *testing.T) {
	tests := []struct {
		name     string
		act      func(p *Pet)
		start    Stats
		want     Stats
		wantDebt time.Duration
	}{
		{
			name:     "soup",
			act:      func(p *Pet) { p.Feed(FoodSoup) },
			start:    Stats{Food: 50, Joy: 50, Energy: 50, Health: 50},
			want:     Stats{Food: 70, Joy: 50, Energy: 50, Health: 50},
			wantDebt: 6 * time.Minute,
		},
		{
			name:     "fries",
			act:      func(p *Pet) { p.Feed(FoodFries) },
			start:    Stats{Food: 50, Joy: 50, Energy: 50, Health: 50},
			want:     Stats{Food: 80, Joy: 50, Energy: 50, Health: 50},
			wantDebt: 10 * time.Minute,
		},
		{
			name:     "feed saturates",
			act:      func(p *Pet) { p.Feed(FoodBurger) },
			start:    Stats{Food: 90, Joy: 50, Energy: 50, Health: 50},
			want:     Stats{Food: 100, Joy: 50, Energy: 50, Health: 50},
			wantDebt: 13 * time.Minute,
		},
		{
			name:     "play",
			act:      func(p *Pet) { p.Play() },
			start:    Stats{Food: 50, Joy: 50, Energy: 50, Health: 50},
			want:     Stats{Food: 50, Joy: 80, Energy: 50, Health: 50},
			wantDebt: 10 * time.Minute,
		},
		{
			name:  "medicine",
			act:   func(p *Pet) { p.TakeMedicine() },
			start: Stats{Food: 50, Joy: 50, Energy: 50, Health: 70},
			want:  Stats{Food: 50, Joy: 50, Energy: 50, Health: 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := adultAt(t0)
			setStats(p, tc.start)
			tc.act(p)
			if p.Stats() != tc.want {
				t.Errorf("Stats() = %+v, expected %+v", p.Stats(), tc.want)
			}
			if p.HealthDebt() != tc.wantDebt {
				t.Errorf("HealthDebt() = %v, expected %v", p.HealthDebt(), tc.wantDebt)
			}
		})
	}
}

func TestToggleSleep(t *testing.T) {
	p := adultAt(t0)

	p.ToggleSleep(t0.Add(time.Minute))
	since, asleep := p.AsleepSince()
	if !asleep || !since.Equal(t0.Add(time.Minute)) {
		t.Fatalf("AsleepSince() = %v, %v", since, asleep)
	}

	p.ToggleSleep(t0.Add(2 * time.Minute))
	if _, asleep := p.AsleepSince(); asleep {
		t.Error("second toggle should wake the pet")
	}
}

func TestSleepRegeneratesEnergy(t *testing.T) {
	p := adultAt(t0)
	setStats(p, Stats{Food: 100, Joy: 100, Energy: 10, Health: 100})
	p.ToggleSleep(t0)

	p.UpdateState(t0.Add(2 * time.Hour))

	if !p.Asleep() {
		t.Error("pet should still be asleep after two hours")
	}
	if got := p.Stats().Energy; got != 40 {
		t.Errorf("energy = %d, expected 40 after 10 quanta", got)
	}
}

func TestHealthDoesNotDecayWithoutDebt(t *testing.T) {
	p := adultAt(t0)
	setStats(p, Stats{Food: 100, Joy: 100, Energy: 100, Health: 60})

	p.UpdateState(t0.Add(3 * time.Hour))

	if got := p.Stats().Health; got != 60 {
		t.Errorf("health = %d, expected 60", got)
	}
}

func TestUpdateIsIdempotentForSameNow(t *testing.T) {
	p := New("Waldo", "duck", core.ColorRed, t0)
	now := t0.Add(7*time.Hour + 13*time.Minute + 417*time.Millisecond)
	p.UpdateState(now)
	p.UpdateState(now)
	p.Feed(FoodFries)

	later := now.Add(3*time.Hour + 5*time.Second)
	once := *p
	once.UpdateState(later)
	twice := *p
	twice.UpdateState(later)
	twice.UpdateState(later)

	if diff := cmp.Diff(&once, &twice, petCmp); diff != "" {
		t.Errorf("second update with the same now changed the pet (-once +twice):\n%s", diff)
	}
}

func TestOfflineCatchUpCarriesResidual(t *testing.T) {
	p := adultAt(t0)
	setStats(p, Stats{Food: 100, Joy: 100, Energy: 100, Health: 100})

	p.UpdateState(t0.Add(20 * time.Minute))
	if got := p.Stats().Food; got != 99 {
		t.Fatalf("food after 20m = %d, expected 99", got)
	}

	// The 6 minute residual carries over: 106 minutes is 7 more quanta.
	p.UpdateState(t0.Add(120 * time.Minute))
	if got := p.Stats().Food; got != 92 {
		t.Errorf("food after catch-up = %d, expected 92", got)
	}

	want := Millis(t0.Add(8 * FoodQuantum))
	if !p.lastFoodTick.Equal(want) {
		t.Errorf("food cursor = %v, expected %v", p.lastFoodTick, want)
	}
}

func TestAlivePredicate(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		alive bool
		cause Cause
	}{
		{"healthy", Stats{Food: 50, Joy: 50, Energy: 50, Health: 50}, true, CauseNone},
		{"weak", Stats{Food: 5, Joy: 5, Energy: 80, Health: 4}, false, CauseWeakness},
		{"sum of fifteen survives", Stats{Food: 5, Joy: 5, Energy: 80, Health: 5}, true, CauseNone},
		{"weakness wins over neglect", Stats{Food: 0, Joy: 0, Energy: 0, Health: 10}, false, CauseWeakness},
		{"two zeros", Stats{Food: 0, Joy: 20, Energy: 0, Health: 20}, false, CauseNeglect},
		{"one zero survives", Stats{Food: 0, Joy: 20, Energy: 50, Health: 20}, true, CauseNone},
		{"sick", Stats{Food: 60, Joy: 60, Energy: 60, Health: 0}, false, CauseSickness},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := adultAt(t0)
			setStats(p, tc.stats)
			p.UpdateState(t0)
			if p.Alive() != tc.alive {
				t.Fatalf("Alive() = %v, expected %v", p.Alive(), tc.alive)
			}
			if p.CauseOfDeath() != tc.cause {
				t.Errorf("CauseOfDeath() = %q, expected %q", p.CauseOfDeath(), tc.cause)
			}
		})
	}
}

func TestDeadPetIgnoresActions(t *testing.T) {
	p := adultAt(t0)
	setStats(p, Stats{Food: 60, Joy: 60, Energy: 60, Health: 0})
	p.UpdateState(t0)
	if p.Alive() {
		t.Fatal("pet should be dead")
	}

	p.Feed(FoodBurger)
	p.Play()
	p.TakeMedicine()
	p.ToggleSleep(t0)

	want := Stats{Food: 60, Joy: 60, Energy: 60, Health: 0}
	if p.Stats() != want {
		t.Errorf("Stats() = %+v, expected %+v", p.Stats(), want)
	}
	if p.Asleep() || p.HealthDebt() != 0 {
		t.Error("dead pet must not sleep or accrue debt")
	}

	p.TakeMedicine()
	p.UpdateState(t0.Add(time.Hour))
	if p.Alive() {
		t.Error("death must be permanent")
	}
}

func TestRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := New("Waldo", "duck", core.ColorRed, t0)
	now := t0
	lastStage := p.Stage()
	wasDead := false

	for i := 0; i < 5000; i++ {
		now = now.Add(time.Duration(rng.Intn(int(20 * time.Minute))))
		p.UpdateState(now)

		switch rng.Intn(5) {
		case 0:
			p.Feed(RandomFood(rng))
		case 1:
			p.Play()
		case 2:
			p.ToggleSleep(now)
		case 3:
			p.TakeMedicine()
		}

		s := p.Stats()
		for _, v := range []int{s.Food, s.Joy, s.Energy, s.Health} {
			if v < 0 || v > StatMax {
				t.Fatalf("step %d: stat out of range: %+v", i, s)
			}
		}
		if p.Stage() < lastStage {
			t.Fatalf("step %d: stage went backwards from %s to %s", i, lastStage, p.Stage())
		}
		lastStage = p.Stage()
		if wasDead && p.Alive() {
			t.Fatalf("step %d: pet came back to life", i)
		}
		wasDead = !p.Alive()
		if p.HealthDebt() < 0 {
			t.Fatalf("step %d: negative health debt %v", i, p.HealthDebt())
		}
		for _, c := range []time.Time{p.lastFoodTick, p.lastJoyTick, p.lastEnergyTick, p.lastHealthTick} {
			if c.After(now) {
				t.Fatalf("step %d: cursor %v ahead of now %v", i, c, now)
			}
		}
	}
}

func TestPetJSONRoundTrip(t *testing.T) {
	p := adultAt(t0.Add(123 * time.Millisecond))
	p.Feed(FoodFries)
	p.ToggleSleep(t0.Add(456 * time.Millisecond))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got Pet
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(p, &got, petCmp); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPetJSONRejectsCorruptRecords(t *testing.T) {
	p := adultAt(t0)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	valid := string(data)

	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"stat above range", `"food":50`, `"food":101`},
		{"negative stat", `"joy":50`, `"joy":-1`},
		{"unknown stage", `"growth_stage":"adult"`, `"growth_stage":"teen"`},
		{"unknown color", `"color":"cyan"`, `"color":"mauve"`},
		{"missing creation time", `"time_created":`, `"time_created_x":`},
		{"asleep without asleep_since", `"asleep":false`, `"asleep":true`},
		{"awake with asleep_since", `"asleep_since":null`, `"asleep_since":1700000000000`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			corrupt := strings.Replace(valid, tc.old, tc.new, 1)
			if corrupt == valid {
				t.Fatalf("fixture did not contain %s", tc.old)
			}
			var got Pet
			if err := json.Unmarshal([]byte(corrupt), &got); err == nil {
				t.Error("Unmarshal should fail")
			}
		})
	}
}
