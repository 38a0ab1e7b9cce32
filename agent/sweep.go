package agent

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nstehr/vimy/vimy-fuzzy/ai"
	"github.com/nstehr/vimy/vimy-fuzzy/fuzzy"
	"github.com/nstehr/vimy/vimy-fuzzy/model"
)

// maxReported bounds the violations kept in a report; all are counted.
const maxReported = 20

type SweepOptions struct {
	Samples int
	Workers int
	Seed    int64
}

// Violation is one input combination an engine failed on.
type Violation struct {
	Engine string
	Detail string
}

type SweepReport struct {
	Samples    int
	Count      int
	Violations []Violation
	// Per-engine output range seen over the sweep.
	Ranges map[string][2]float64
}

type sweepResult struct {
	mu     sync.Mutex
	report SweepReport
}

func (r *sweepResult) observe(engine string, v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rng, ok := r.report.Ranges[engine]
	if !ok {
		rng = [2]float64{v, v}
	}
	rng[0], rng[1] = min(rng[0], v), max(rng[1], v)
	r.report.Ranges[engine] = rng
}

func (r *sweepResult) violate(engine, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report.Count++
	if len(r.report.Violations) < maxReported {
		r.report.Violations = append(r.report.Violations, Violation{Engine: engine, Detail: fmt.Sprintf(format, args...)})
	}
}

// Sweep feeds random inputs through every engine and reports outputs
// that are non-finite, out of range or produced by no rule. Each worker
// gets its own session from newSession.
func Sweep(ctx context.Context, opts SweepOptions, newSession func() *Session) (SweepReport, error) {
	workers := max(opts.Workers, 1)
	res := &sweepResult{report: SweepReport{Samples: opts.Samples, Ranges: make(map[string][2]float64)}}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := opts.Samples / workers
		if w < opts.Samples%workers {
			n++
		}
		r := rand.New(rand.NewSource(opts.Seed + int64(w)))
		g.Go(func() error {
			s := newSession()
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sweepSample(s.Dispatcher(), r, res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res.report, err
	}
	return res.report, nil
}

func sweepSample(d *ai.Dispatcher, r *rand.Rand, res *sweepResult) {
	friendly, enemy := RandomArmy(r), RandomArmy(r)
	threat, err := d.Tactical().Threat(friendly, enemy)
	switch {
	case err != nil:
		res.violate("tactical", "%v (friendly %s, enemy %s)", err, describeArmy(friendly), describeArmy(enemy))
	case math.IsNaN(threat) || threat < ai.MinStrength || threat > ai.MaxStrength:
		res.violate("tactical", "threat %v (friendly %s, enemy %s)", threat, describeArmy(friendly), describeArmy(enemy))
	default:
		res.observe("tactical", threat)
	}

	e := d.VisitTile().Engine()
	inputs := map[string]float64{
		"strengthRatio":           r.Float64() * 3 * d.Params().SafeAttackRatio,
		"heroStrength":            r.Float64(),
		"turnDistance":            r.Float64() * 3,
		"lockedMissionImportance": r.Float64() * 5,
		"estimatedReward":         r.Float64() * 5,
	}
	reward := r.Intn(2) == 0
	checkMovement(e, inputs, map[string]bool{"estimatedReward": reward}, res)

	inputs = map[string]float64{
		"turnDistance": r.Float64() * 3,
		"objectValue":  r.Float64() * 20000,
	}
	checkMovement(d.Wander().Engine(), inputs, nil, res)
}

func checkMovement(e *fuzzy.Engine, inputs map[string]float64, enabled map[string]bool, res *sweepResult) {
	for name, x := range inputs {
		e.SetValue(name, x)
	}
	for name, on := range enabled {
		e.SetEnabled(name, on)
	}
	if err := e.Process(); err != nil {
		res.violate(e.Name, "%v (inputs %v)", err, inputs)
		return
	}
	v, _ := e.Value("Value")
	if math.IsNaN(v) || v < 0 || v > 5 {
		res.violate(e.Name, "value %v (inputs %v)", v, inputs)
		return
	}
	res.observe(e.Name, v)
}

// RandomArmy draws a non-empty army with random stacks and site.
func RandomArmy(r *rand.Rand) model.Army {
	stacks := make([]model.Stack, 1+r.Intn(7))
	for i := range stacks {
		stacks[i] = model.Stack{
			Count:   1 + r.Intn(50),
			Power:   1 + r.Float64()*5000,
			Shooter: r.Intn(3) == 0,
			Flying:  r.Intn(4) == 0,
			Speed:   1 + r.Intn(24),
		}
	}
	a := model.Army{Stacks: stacks}
	switch r.Intn(4) {
	case 0:
		a.Site = model.SiteBank
	case 1:
		a.Site = model.SiteTown
		a.Walls = model.WallLevel(r.Intn(4))
	}
	return a
}

func describeArmy(a model.Army) string {
	as, err := ai.EvaluateArmyStructure(a.Stacks)
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("%s walls=%s walk=%.2f shoot=%.2f fly=%.2f speed=%d",
		a.Site, a.WallLevel(), as.Walkers, as.Shooters, as.Fliers, as.MaxSpeed)
}
