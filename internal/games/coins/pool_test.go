package coins

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/coinrush/internal/core"
)

// fakeRand replays queued values. With nothing queued Intn returns 0 and
// Float64 returns 0.999, which never passes a churn trial.
type fakeRand struct {
	ints   []int
	floats []float64
}

func (r *fakeRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

var (
	board = core.NewBounds(18, 12)
	odds  = Odds{Add: 1.0 / 30, Remove: 1.0 / 20}
	posA  = core.Pos{Col: 1, Row: 1}
	posB  = core.Pos{Col: 2, Row: 2}
	posC  = core.Pos{Col: 3, Row: 3}
	coinA = Coin{Pos: posA, Value: 50}
	coinB = Coin{Pos: posB, Value: 50}
	coinC = Coin{Pos: posC, Value: 50}
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSpawnRandomWithinBounds(t *testing.T) {
	p := NewPool(board, 50, odds)
	spawned := p.SpawnRandom(500, seeded(1))

	if len(spawned) != 500 || p.Len() != 500 {
		t.Fatalf("spawned %d, pool has %d, expected 500", len(spawned), p.Len())
	}
	for c := range p.All() {
		if !board.Contains(c.Pos) {
			t.Errorf("coin spawned off board at %v", c.Pos)
		}
		if c.Value != 50 {
			t.Errorf("coin value = %d, expected 50", c.Value)
		}
	}
}

func TestSpawnRandomZeroIsNoop(t *testing.T) {
	p := NewPool(board, 50, odds)
	if got := p.SpawnRandom(0, &fakeRand{}); got != nil {
		t.Errorf("SpawnRandom(0) = %v, expected nil", got)
	}
	p.SpawnRandom(-3, &fakeRand{})
	if p.Len() != 0 {
		t.Errorf("pool has %d coins, expected 0", p.Len())
	}
}

func TestSpawnRandomAllowsDuplicates(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.SpawnRandom(4, &fakeRand{}) // every draw lands on (0,0)

	if n := p.CountAt(core.Pos{}); n != 4 {
		t.Errorf("CountAt(0,0) = %d, expected 4 stacked coins", n)
	}
}

func TestCollectAtTakesAllDuplicates(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)
	p.Add(coinB)
	p.Add(coinA)
	p.Add(coinC)
	p.Add(coinA)

	collected := p.CollectAt(posA)
	if len(collected) != 3 {
		t.Fatalf("collected %d coins, expected 3", len(collected))
	}
	if p.CountAt(posA) != 0 {
		t.Error("collected tile should be empty")
	}
	if got := p.Coins(); !slices.Equal(got, []Coin{coinB, coinC}) {
		t.Errorf("remaining = %v, expected [B C] in order", got)
	}
}

func TestCollectAtEmptyTile(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)

	if got := p.CollectAt(posC); len(got) != 0 {
		t.Errorf("CollectAt on empty tile returned %v", got)
	}
	if p.Len() != 1 {
		t.Errorf("pool size = %d, expected 1", p.Len())
	}
}

func TestChurnRemovesOldestCoin(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)
	p.Add(coinB)
	p.Add(coinC)

	// add trial fails, remove trial fires
	res := p.Churn(&fakeRand{floats: []float64{0.99, 0.0}})

	if res.Added {
		t.Error("add trial should not have fired")
	}
	if !res.Removed || res.Old != coinA {
		t.Fatalf("churn result = %+v, expected coin A removed", res)
	}
	if got := p.Coins(); !slices.Equal(got, []Coin{coinB, coinC}) {
		t.Errorf("remaining = %v, expected [B C]", got)
	}
}

func TestChurnAddsRandomCoin(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)

	res := p.Churn(&fakeRand{ints: []int{7, 4}, floats: []float64{0.0, 0.99}})

	want := Coin{Pos: core.Pos{Col: 7, Row: 4}, Value: 50}
	if !res.Added || res.New != want {
		t.Fatalf("churn result = %+v, expected %v added", res, want)
	}
	if res.Removed {
		t.Error("remove trial should not have fired")
	}
	if got := p.Coins(); !slices.Equal(got, []Coin{coinA, want}) {
		t.Errorf("pool = %v, expected new coin appended", got)
	}
}

func TestChurnRemoveOnEmptyPoolIsNoop(t *testing.T) {
	p := NewPool(board, 50, odds)

	res := p.Churn(&fakeRand{floats: []float64{0.99, 0.0}})
	if res.Removed {
		t.Error("removal on an empty pool should report nothing removed")
	}
	if p.Len() != 0 {
		t.Errorf("pool size = %d, expected 0", p.Len())
	}
}

func TestChurnBothTrialsSameTick(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)

	res := p.Churn(&fakeRand{ints: []int{5, 5}, floats: []float64{0.0, 0.0}})
	if !res.Added || !res.Removed {
		t.Fatalf("both trials should fire, got %+v", res)
	}
	if res.Old != coinA {
		t.Errorf("removed %v, expected the older coin A", res.Old)
	}
	if p.Len() != 1 || p.Coins()[0] != res.New {
		t.Errorf("pool = %v, expected only the new coin", p.Coins())
	}
}

func TestChurnFrequencies(t *testing.T) {
	const trials = 300_000

	p := NewPool(board, 50, odds)
	// Keep the pool far from empty so every fired removal is observable.
	for range trials / 10 {
		p.Add(coinA)
	}

	rng := seeded(2024)
	adds, removes := 0, 0
	for range trials {
		res := p.Churn(rng)
		if res.Added {
			adds++
		}
		if res.Removed {
			removes++
		}
	}

	check := func(name string, got int, prob float64) {
		t.Helper()
		freq := float64(got) / trials
		// Five standard deviations of a binomial proportion.
		tol := 5 * math.Sqrt(prob*(1-prob)/trials)
		if math.Abs(freq-prob) > tol {
			t.Errorf("%s frequency = %.5f, expected %.5f +/- %.5f", name, freq, prob, tol)
		}
	}
	check("add", adds, 1.0/30)
	check("remove", removes, 1.0/20)
}

func TestCoinsReturnsCopy(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)

	view := p.Coins()
	view[0] = coinC

	if p.Coins()[0] != coinA {
		t.Error("modifying Coins() result must not change the pool")
	}
}

func TestAllStopsEarly(t *testing.T) {
	p := NewPool(board, 50, odds)
	p.Add(coinA)
	p.Add(coinB)
	p.Add(coinC)

	seen := 0
	for range p.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("iterated %d coins, expected to stop at 2", seen)
	}
}
