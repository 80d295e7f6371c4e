package tracing

import (
	"context"
	"fmt"

	"fgblog/config"
	"fgblog/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init 初始化全局 TracerProvider，返回关闭函数。
// 未配置导出器时保留默认的空实现。
func Init(cfg config.TracingConfig, log *logger.Logger) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Exporter {
	case "":
		return noop, nil
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return noop, fmt.Errorf("创建trace导出器失败: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		log.Info("链路追踪已启用", "exporter", cfg.Exporter, "service", cfg.ServiceName)
		return tp.Shutdown, nil
	default:
		return noop, fmt.Errorf("不支持的trace导出器: %s", cfg.Exporter)
	}
}
