package observability

import (
	"context"
	"testing"
	"time"
)

type testAnalysisHooks struct {
	starts, completes, failures int
}

func (h *testAnalysisHooks) OnAnalyzeStart(context.Context, string, int) { h.starts++ }
func (h *testAnalysisHooks) OnAnalyzeComplete(context.Context, string, int, time.Duration, bool) {
	h.completes++
}
func (h *testAnalysisHooks) OnDecodeFailure(context.Context, string) { h.failures++ }

type testCacheHooks struct{ hits int }

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     {}
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) {}

type testHTTPHooks struct{}

func (testHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAnalysisHooks{}
	a.OnAnalyzeStart(ctx, "sort", 100)
	a.OnAnalyzeComplete(ctx, "sort", 100, time.Second, false)
	a.OnDecodeFailure(ctx, "path")

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "analysis")
	c.OnCacheMiss(ctx, "analysis")
	c.OnCacheSet(ctx, "analysis", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/sort")
	h.OnResponse(ctx, "POST", "/v1/sort", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	if Analysis() != customAnalysis {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Reset() should restore NoopAnalysisHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnalysisHooks{}
	SetAnalysisHooks(custom)
	SetAnalysisHooks(nil)
	if Analysis() != custom {
		t.Error("SetAnalysisHooks(nil) should keep the previous hooks")
	}
}

func TestInitDiagnosticsIsIdempotent(t *testing.T) {
	// Must not panic or block when called repeatedly.
	InitDiagnostics()
	InitDiagnostics()
}
