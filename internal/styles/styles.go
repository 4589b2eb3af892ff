package styles

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"github.com/ib-77/tryfetch/internal/apierr"
	"github.com/ib-77/tryfetch/internal/swapi"
	"github.com/ib-77/tryfetch/pkg/rop"
	"github.com/ib-77/tryfetch/pkg/rop/chain"
	"github.com/ib-77/tryfetch/pkg/rop/future"
	"github.com/ib-77/tryfetch/pkg/rop/trycatch"
)

const (
	FetchFallback   = "Fetch error"
	JSONFallback    = "Json error"
	GenericFallback = "Something went wrong"
)

// Fetcher starts the request for one person.
type Fetcher interface {
	FetchAsync(ctx context.Context) *future.Future[*swapi.Response]
}

type Report struct {
	Person   *swapi.Person
	Fallback string
}

func (r Report) String() string {
	if r.Person != nil {
		return r.Person.Name()
	}
	return r.Fallback
}

func fallback(ctx context.Context, text string, err error) Report {
	slog.DebugContext(ctx, "using fallback", slog.String("fallback", text), slog.String("error", err.Error()))
	return Report{Fallback: text}
}

// Style is one way of running the request.
type Style func(ctx context.Context, f Fetcher) (Report, error)

var registry = map[string]Style{
	"unchecked":  Unchecked,
	"split":      SplitChecks,
	"single":     SingleCheck,
	"wrapped":    Wrapped,
	"pipeline":   Pipeline,
	"sequential": Sequential,
}

// Names lists the registered styles in order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

func Lookup(name string) (Style, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q, expected one of %v", name, Names())
	}
	return s, nil
}

// Unchecked hands every failure to the caller without looking at it.
func Unchecked(ctx context.Context, f Fetcher) (Report, error) {
	resp, err := f.FetchAsync(ctx).Get()
	if err != nil {
		return Report{}, err
	}
	p, err := resp.DecodeAsync(ctx).Get()
	if err != nil {
		return Report{}, err
	}
	return Report{Person: p}, nil
}

// SplitChecks handles each stage separately. The status is not inspected, so
// an error page that happens to be JSON decodes without complaint.
func SplitChecks(ctx context.Context, f Fetcher) (Report, error) {
	resp, err := f.FetchAsync(ctx).Get()
	if err != nil {
		return fallback(ctx, FetchFallback, err), nil
	}

	p, err := resp.DecodeAsync(ctx).Get()
	if err != nil {
		return fallback(ctx, JSONFallback, err), nil
	}
	return Report{Person: p}, nil
}

// SingleCheck funnels both stages into one generic fallback.
func SingleCheck(ctx context.Context, f Fetcher) (Report, error) {
	p, err := func() (*swapi.Person, error) {
		resp, err := f.FetchAsync(ctx).Get()
		if err != nil {
			return nil, err
		}
		return resp.DecodeAsync(ctx).Get()
	}()
	if err != nil {
		return fallback(ctx, GenericFallback, err), nil
	}
	return Report{Person: p}, nil
}

// Wrapped turns each stage into a rop.Result and branches on its failure.
func Wrapped(ctx context.Context, f Fetcher) (Report, error) {
	fetched := trycatch.Await[*swapi.Response](f.FetchAsync(ctx))
	if fetched.IsFailure() {
		return fallback(ctx, FetchFallback, fetched.Err()), nil
	}

	decoded := trycatch.Await[*swapi.Person](fetched.Result().DecodeAsync(ctx))
	if decoded.IsFailure() {
		return fallback(ctx, JSONFallback, decoded.Err()), nil
	}
	return Report{Person: decoded.Result()}, nil
}

func catchKinds(ctx context.Context) func(err error) (Report, bool) {
	return apierr.CatchKinds(map[apierr.Kind]func(error) Report{
		apierr.KindFetch: func(err error) Report { return fallback(ctx, FetchFallback, err) },
		apierr.KindJSON:  func(err error) Report { return fallback(ctx, JSONFallback, err) },
	})
}

// Pipeline composes the stages with chain and settles tagged failures at the
// end. Untagged failures reach the caller.
func Pipeline(ctx context.Context, f Fetcher) (Report, error) {
	catch := catchKinds(ctx)

	fetched := chain.Start(ctx, trycatch.Await[*swapi.Response](f.FetchAsync(ctx))).
		Filter(
			func(_ context.Context, r *swapi.Response) bool { return r.OK() },
			func(_ context.Context, r *swapi.Response) error { return swapi.CheckStatus(r) },
		)

	decoded := chain.Then(fetched, func(ctx context.Context, r *swapi.Response) rop.Result[*swapi.Person] {
		return trycatch.Await[*swapi.Person](r.DecodeAsync(ctx))
	}).Ensure(func(ctx context.Context, p *swapi.Person) {
		slog.DebugContext(ctx, "person decoded", "name", p.Name())
	})

	settled := chain.Map(decoded, func(_ context.Context, p *swapi.Person) Report {
		return Report{Person: p}
	}).Catch(func(_ context.Context, err error) (Report, bool) { return catch(err) })

	var unhandled error
	report := chain.Finally(settled,
		func(_ context.Context, r Report) Report { return r },
		func(_ context.Context, err error) Report {
			unhandled = err
			return Report{}
		})
	return report, unhandled
}

// Sequential uses the same tags as Pipeline with early returns.
func Sequential(ctx context.Context, f Fetcher) (Report, error) {
	catch := catchKinds(ctx)
	settle := func(err error) (Report, error) {
		if r, ok := catch(err); ok {
			return r, nil
		}
		return Report{}, err
	}

	resp, err := f.FetchAsync(ctx).Get()
	if err != nil {
		return settle(err)
	}
	if err := swapi.CheckStatus(resp); err != nil {
		return settle(err)
	}

	p, err := resp.DecodeAsync(ctx).Get()
	if err != nil {
		return settle(err)
	}
	return Report{Person: p}, nil
}
