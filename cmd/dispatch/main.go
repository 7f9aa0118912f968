package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"

	"github.com/parcelops/dispatch/modules/api"
	"github.com/parcelops/dispatch/modules/engine"
	"github.com/parcelops/dispatch/modules/registry"
	"github.com/parcelops/dispatch/pkg/dispatchpb"
	"github.com/parcelops/dispatch/pkg/gogocodec"
	util_log "github.com/parcelops/dispatch/pkg/util/log"
)

const appName = "dispatch"

func init() {
	encoding.RegisterCodec(gogocodec.NewCodec())
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed parsing config: %v\n", err)
		os.Exit(1)
	}

	logger := util_log.InitLogger(cfg.LogLevel)
	level.Info(logger).Log("msg", "starting "+appName,
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"order_queue_size", cfg.OrderQueueSize,
		"event_buffer_size", cfg.EventBufferSize,
	)

	reg := registry.New(registry.Config{
		OrderQueueSize:  cfg.OrderQueueSize,
		EventBufferSize: cfg.EventBufferSize,
	})

	eng := engine.New(reg, logger)
	if err := services.StartAndAwaitRunning(context.Background(), eng); err != nil {
		level.Error(logger).Log("msg", "failed to start assignment engine", "err", err)
		os.Exit(1)
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		level.Error(logger).Log("msg", "failed to listen", "addr", grpcAddr, "err", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	dispatchpb.RegisterDispatchServer(grpcServer, api.NewGRPCService(reg, logger))

	go func() {
		level.Info(logger).Log("msg", "grpc server listening", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "grpc server error", "err", err)
		}
	}()

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:    httpAddr,
		Handler: api.New(reg, logger).Routes(),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		<-quit
		level.Info(logger).Log("msg", "shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			level.Error(logger).Log("msg", "error during http shutdown", "err", err)
		}
		grpcServer.GracefulStop()

		// closing the queue terminates the engine loop
		reg.Close()
		if err := services.StopAndAwaitTerminated(ctx, eng); err != nil {
			level.Error(logger).Log("msg", "error stopping assignment engine", "err", err)
		}
		close(done)
	}()

	level.Info(logger).Log("msg", "http server listening", "addr", httpAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		level.Error(logger).Log("msg", "http server error", "err", err)
		os.Exit(1)
	}

	<-done
	level.Info(logger).Log("msg", "shutdown complete")
}
