package xmetrics

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Totals 从 reader 收集一次数据，返回每个 Int64 Sum 指标在所有属性组合上的总和。
// 非整数求和类指标（如耗时直方图）被忽略。
func Totals(ctx context.Context, reader *sdkmetric.ManualReader) (map[string]int64, error) {
	if reader == nil {
		return nil, ErrNilReader
	}
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("xmetrics: collect: %w", err)
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			totals[m.Name] += total
		}
	}
	return totals, nil
}
