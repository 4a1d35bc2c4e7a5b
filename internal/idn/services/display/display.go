// Package display prepares domain names for presentation. It ties together
// the parser, the override list and the renderers.
package display

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/common/utils"
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/gateways/idna"
	"github.com/haukened/idn-display/internal/idn/services/render"
)

// Overrides reports names that must always be shown in ASCII.
type Overrides interface {
	Decide(name string) domain.OverrideDecision
}

// Service turns domain names into display forms, consulting overrides before the spoof check.
type Service struct {
	classifier render.Classifier
	overrides  Overrides
	logger     log.Logger
	workers    int
}

// Options configures a Service.
type Options struct {
	// Classifier defaults to the shared spoof-check classifier when nil.
	Classifier render.Classifier
	Overrides  Overrides
	Logger     log.Logger
	// Workers bounds DisplayAll concurrency when the caller passes 0.
	Workers int
}

// Result pairs a batch input's display with its parse error, if any.
type Result struct {
	Display domain.Display
	Err     error
}

var parse = idna.Parse

// New returns a Service configured by opts.
func New(opts Options) *Service {
	s := &Service{
		classifier: opts.Classifier,
		overrides:  opts.Overrides,
		logger:     opts.Logger,
		workers:    opts.Workers,
	}
	if s.logger == nil {
		s.logger = log.NewNoopLogger()
	}
	if s.workers <= 0 {
		s.workers = 1
	}
	return s
}

// Display parses input and renders it three ways: the ASCII form, the
// unchecked Unicode form and the spoof-checked form. A matching override
// forces the checked form to ASCII. Only invalid input and a done context
// produce an error.
func (s *Service) Display(ctx context.Context, input string) (domain.Display, error) {
	d := domain.Display{Input: input}
	if err := ctx.Err(); err != nil {
		return d, err
	}

	name, err := parse(input)
	if err != nil {
		s.logger.Debug(map[string]any{"input": input, "error": err}, "invalid domain")
		return d, err
	}

	checker := render.NewSpoofChecked(s.classifier)
	d.ASCII = name.Render(&render.ASCII{})
	d.Unchecked = render.Unchecked(name)
	d.Checked = name.Render(checker)
	d.TopLevel = checker.TopLevelDomain()
	d.Labels = checker.Verdicts()
	d.Registrable = utils.RegistrableDomain(d.ASCII)

	if s.overrides != nil && name.HasIDN() {
		dec := s.overrides.Decide(d.ASCII)
		if dec.Forced {
			d.Checked = d.ASCII
			d.Override = &domain.OverrideRule{Name: dec.MatchedRule, Kind: dec.Kind, Source: dec.Source}
			s.logger.Debug(map[string]any{"name": d.ASCII, "rule": dec.MatchedRule, "source": dec.Source}, "override forced ascii")
		}
	}

	if d.Spoofed() {
		s.logger.Debug(map[string]any{"input": input, "checked": d.Checked}, "displaying ascii form")
	}
	return d, nil
}

// DisplayAll renders inputs concurrently with at most workers in flight,
// falling back to the service default when workers <= 0. Results keep the
// order of inputs. The returned error is non-nil only when ctx ends first.
func (s *Service) DisplayAll(ctx context.Context, inputs []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = s.workers
	}
	out := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			d, err := s.Display(gctx, in)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			out[i] = Result{Display: d, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
