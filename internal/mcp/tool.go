package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bonddata/internal/curve"
	"bonddata/pkg/logger"
	"bonddata/pkg/metrics"
	"bonddata/pkg/serrors"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const curveToolName = "get_china_bond_curve"

const curveToolDescription = "从中国债券信息网获取国债及其他债券收益率曲线数据并进行统计分析。" +
	"返回所选曲线在日期范围内每个期限的逐日收益率、描述性统计(最大/最小/均值/中位数/方差/标准差/四分位数)," +
	"以及请求多个期限时期限之间的相关系数。收益率单位为百分比,如1.6077表示1.6077%。"

// curveToolSchema is written by hand because term_list accepts either a single
// term string or an array of terms, and the date fields accept strings or
// integers. The generated helpers cannot express those unions.
const curveToolSchema = `{
  "type": "object",
  "properties": {
    "bond_curve_name": {
      "type": "string",
      "description": "债券曲线名称",
      "enum": ["中债国债收益率曲线", "中债中短期票据收益率曲线(AAA)", "中债商业银行普通债收益率曲线(AAA)"],
      "default": "中债国债收益率曲线"
    },
    "term_list": {
      "description": "债券曲线期限,可以是单个期限字符串或期限列表。可选值: 3月, 6月, 1年, 3年, 5年, 7年, 10年, 30年",
      "anyOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}}
      ],
      "default": "10年"
    },
    "start_date": {
      "description": "收益率曲线开始日期,格式为YYYYMMDD,例如20250101",
      "anyOf": [{"type": "string"}, {"type": "integer"}],
      "default": "20250101"
    },
    "end_date": {
      "description": "收益率曲线结束日期,格式为YYYYMMDD,例如20250105",
      "anyOf": [{"type": "string"}, {"type": "integer"}],
      "default": "20250105"
    }
  }
}`

func newCurveTool() mcpgo.Tool {
	return mcpgo.NewToolWithRawSchema(curveToolName, curveToolDescription, json.RawMessage(curveToolSchema))
}

// newCurveToolHandler returns the handler serving get_china_bond_curve calls.
// Validation failures and missing data are reported as tool errors so the
// calling model can read and react to them; only transport-level failures
// become protocol errors.
func newCurveToolHandler(service curve.Service, m *metrics.Metrics, maxRangeDays int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		began := time.Now()

		result, err := serveCurveCall(ctx, service, request, maxRangeDays)
		m.ToolCall(ctx, curveToolName, time.Since(began), err != nil || result.IsError)
		if err != nil {
			return nil, err
		}

		return result, nil
	}
}

func serveCurveCall(ctx context.Context,
	service curve.Service,
	request mcpgo.CallToolRequest,
	maxRangeDays int) (*mcpgo.CallToolResult, error) {
	args := request.GetArguments()

	curveName := stringArg(args, "bond_curve_name", string(curve.DefaultCurve))
	terms, err := termListArg(args)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	startDate, err := dateArg(args, "start_date", curve.DefaultStartDate)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	endDate, err := dateArg(args, "end_date", curve.DefaultEndDate)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	query, err := curve.ParseQuery(curveName, terms, startDate, endDate, maxRangeDays)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	report, err := service.Report(ctx, query)
	if err != nil {
		logger.Error(ctx, "could not serve curve report",
			zap.String("curve", curveName),
			zap.Error(err))

		if errors.Is(err, serrors.ErrBadRequest) || errors.Is(err, serrors.ErrNotFound) {
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		return mcpgo.NewToolResultError(fmt.Sprintf("Failed to retrieve data: %s", err)), nil
	}

	return mcpgo.NewToolResultText(string(curve.EncodeReport(report))), nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok {
		return v
	}

	return fallback
}

// termListArg accepts either a single term string or an array of terms.
func termListArg(args map[string]any) ([]string, error) {
	raw, ok := args["term_list"]
	if !ok || raw == nil {
		return []string{string(curve.DefaultTerm)}, nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []any:
		terms := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, serrors.With(serrors.ErrBadRequest, "term_list entries must be strings, got %T", item)
			}
			terms = append(terms, s)
		}

		return terms, nil
	case []string:
		return v, nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "term_list must be a string or an array of strings, got %T", raw)
	}
}

// dateArg accepts a YYYYMMDD string or an integer like 20250101 (JSON numbers
// decode as float64).
func dateArg(args map[string]any, key, fallback string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return fallback, nil
	}

	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "%s must be a string or an integer, got %T", key, raw)
	}
}
