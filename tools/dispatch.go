package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/gentools/pkg/llms"
	"github.com/effective-security/gentools/pkg/llmutils"
	"github.com/effective-security/gentools/pkg/metricskey"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
)

// Invoke resolves the named tool and executes it with the serialized
// arguments. The three failure kinds surface to the caller unchanged:
// ErrToolNotFound on an unknown name, ErrFailedUnmarshalInput on
// malformed arguments, and ErrToolFailed wrapping whatever the tool
// itself raised. The result is returned exactly as the tool produced it;
// any further encoding is up to the caller.
//
// Invoke imposes no retry, timeout or cancellation of its own, the
// context is passed through to the tool.
func (r *Registry) Invoke(ctx context.Context, call *llms.FunctionCall) (string, error) {
	tool, err := r.Lookup(call.Name)
	if err != nil {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, call.Name)
		if r.callback != nil {
			r.callback.OnToolNotFound(ctx, call.Name)
		}
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_not_found",
			"tool", call.Name,
			"available_tools", strings.Join(r.Names(), ", "),
		)
		return "", err
	}

	args := call.Arguments
	if r.callback != nil {
		r.callback.OnToolStart(ctx, tool, args)
	}

	if r.cache != nil {
		if res, ok := r.cache.Get(ctx, call.Name, args); ok {
			metricskey.StatsToolCacheHits.IncrCounter(1, call.Name)
			if r.callback != nil {
				r.callback.OnToolEnd(ctx, tool, args, res)
			}
			return res, nil
		}
	}

	started := time.Now()
	res, err := tool.Call(ctx, args)
	metricskey.PerfToolCall.MeasureSince(started, call.Name)

	if err != nil {
		if r.callback != nil {
			r.callback.OnToolError(ctx, tool, args, err)
		}
		if errors.Is(err, ErrFailedUnmarshalInput) {
			metricskey.StatsToolInputParseErrors.IncrCounter(1, call.Name)
			return "", err
		}
		metricskey.StatsToolCallsFailed.IncrCounter(1, call.Name)
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_failed",
			"tool", call.Name,
			"err", err.Error(),
		)
		return "", errors.Mark(errors.WithMessagef(err, "failed to call tool %s", call.Name), ErrToolFailed)
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, call.Name)
	if r.cache != nil {
		_ = r.cache.Set(ctx, call.Name, args, res)
	}
	if r.callback != nil {
		r.callback.OnToolEnd(ctx, tool, args, res)
	}
	return res, nil
}

// InvokeToolCall executes a model-issued tool call and renders the
// outcome as a tool response message. Failures become tool-error content
// instead of errors, so a conversation loop can report them back to the
// model and continue. A missing call ID is filled in.
func (r *Registry) InvokeToolCall(ctx context.Context, tc llms.ToolCall) llms.ToolCallResponse {
	if tc.ID == "" {
		tc.ID = uuid.NewString()
	}

	if tc.FunctionCall == nil {
		return llms.ToolCallResponse{
			ToolCallID: tc.ID,
			Content:    llmutils.AddComment("tool", "", "error", "tool call has no function"),
		}
	}

	name := tc.FunctionCall.Name
	res, err := r.Invoke(ctx, tc.FunctionCall)
	if err != nil {
		switch {
		case errors.Is(err, ErrToolNotFound):
			res = fmt.Sprintf("Tool `%s` not found. Please check the tool name and try again with exact match. Available tools: %s",
				name, strings.Join(r.Names(), ", "))
		case errors.Is(err, ErrFailedUnmarshalInput):
			res = llmutils.AddComment("tool", name, "error", "Failed to unmarshal input, check the JSON schema and try again.")
		default:
			res = llmutils.AddComment("tool", name, "error", err.Error())
		}
	}

	return llms.ToolCallResponse{
		ToolCallID: tc.ID,
		Name:       name,
		Content:    res,
	}
}
