package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	StatsToolsRegistered = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tools_registered",
		Help:         "stats_tools_registered provides total tools registered",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total tool calls not found",
		RequiredTags: []string{"tool"},
	}

	StatsToolInputParseErrors = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_input_parse_errors",
		Help:         "stats_tool_input_parse_errors provides total tool input parse errors",
		RequiredTags: []string{"tool"},
	}

	StatsToolCacheHits = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_cache_hits",
		Help:         "stats_tool_cache_hits provides total tool result cache hits",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfToolCall,
	&StatsToolCacheHits,
	&StatsToolCallsFailed,
	&StatsToolCallsNotFound,
	&StatsToolCallsSucceeded,
	&StatsToolInputParseErrors,
	&StatsToolsRegistered,
}
