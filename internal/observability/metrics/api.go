// Package metrics emits the standard StatsD series for outbound API calls and page renders.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/sustainastock/sustainastock-ui/internal/observability/errors"
	"github.com/sustainastock/sustainastock-ui/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// APICallMetric describes one request to the inventory API.
type APICallMetric struct {
	Endpoint string
	Method   string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitAPICall records api.request and api.duration.
func EmitAPICall(sink statsd.Sink, in APICallMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"endpoint": in.Endpoint,
		"method":   in.Method,
		"result":   resultFor(in.Err),
	}
	if in.Status > 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("api.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("api.duration", in.Duration, CloneTags(tags))
	}
}

// PageMetric describes one page controller run.
type PageMetric struct {
	Page     string
	Duration time.Duration
	Err      error
}

// EmitPageLoad records page.load and page.duration.
func EmitPageLoad(sink statsd.Sink, in PageMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"page":   in.Page,
		"result": resultFor(in.Err),
	}
	sink.Count("page.load", 1, tags)
	if in.Duration > 0 {
		sink.Timing("page.duration", in.Duration, CloneTags(tags))
	}
}

func resultFor(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
