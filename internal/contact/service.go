// Package contact validates contact form submissions and relays them to the
// site owner, offering a mailto: fallback when delivery fails.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/textgate"
)

// InvalidError is returned when a submission is rejected before dispatch.
// Fields holds per-field problems; Quality holds the message gate result.
type InvalidError struct {
	Fields  FieldErrors
	Quality textgate.Result
}

func (e *InvalidError) Error() string {
	if len(e.Fields) > 0 {
		return e.Fields.Error()
	}
	return "message rejected: " + strings.Join(e.Quality.Errors, " ")
}

// Problems lists every user-facing message, field errors first.
func (e *InvalidError) Problems() []string {
	out := make([]string, 0, len(e.Fields)+len(e.Quality.Errors))
	keys := lo.Keys(map[string]string(e.Fields))
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, e.Fields[k])
	}
	return append(out, e.Quality.Errors...)
}

// DeliveryError is returned when every delivery attempt failed. Mailto lets
// the visitor send the message manually.
type DeliveryError struct {
	Mailto string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver submission: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Options configures a Service.
type Options struct {
	// Owner receives mailto fallbacks.
	Owner      string
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Service runs the submit pathway: field checks, the quality gate, then the
// relay with one retry.
type Service struct {
	relay     Relay
	validator *Validator
	gate      *textgate.Gate
	opts      Options
	logger    *zap.Logger
}

// NewService wires a Service. A nil relay makes every submit fall back to
// mailto.
func NewService(relay Relay, gate *textgate.Gate, opts Options, logger *zap.Logger) (*Service, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}
	if relay == nil {
		relay = noRelay{}
	}
	if gate == nil {
		gate = textgate.New(textgate.DefaultConfig())
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		relay:     relay,
		validator: v,
		gate:      gate,
		opts:      opts,
		logger:    logger,
	}, nil
}

// Check runs only the quality gate, for live feedback while typing.
func (s *Service) Check(text string) textgate.Result {
	return s.gate.Evaluate(text)
}

// Submit validates sub and delivers it. It returns *InvalidError when the
// submission is rejected and *DeliveryError when delivery failed twice.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	sub = trim(sub)

	if err := s.validator.Validate(sub); err != nil {
		var fields FieldErrors
		if !errors.As(err, &fields) {
			return fmt.Errorf("validate submission: %w", err)
		}
		return &InvalidError{Fields: fields, Quality: s.gate.Evaluate(sub.Message)}
	}

	if quality := s.gate.Evaluate(sub.Message); !quality.Valid {
		s.logger.Info("contact message rejected by quality gate",
			zap.Strings("problems", quality.Errors))
		return &InvalidError{Quality: quality}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	attempt := 0
	backoff := retry.WithMaxRetries(1, retry.NewConstant(s.opts.RetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := s.relay.Send(ctx, sub); err != nil {
			if errors.Is(err, ErrNoRelay) {
				return err
			}
			s.logger.Warn("contact relay attempt failed",
				zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("contact submission not delivered", zap.Error(err))
		return &DeliveryError{Mailto: MailtoLink(s.opts.Owner, sub), Err: err}
	}

	s.logger.Info("contact submission delivered",
		zap.String("name", sub.FullName()), zap.Int("attempts", attempt))
	return nil
}

func trim(sub Submission) Submission {
	sub.FirstName = strings.TrimSpace(sub.FirstName)
	sub.LastName = strings.TrimSpace(sub.LastName)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	return sub
}
