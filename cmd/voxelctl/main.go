package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	voxelcmd "github.com/jpfielding/voxelkit/cmd/voxelctl/cmd"
	"github.com/jpfielding/voxelkit/pkg/logging"
)

var (
	GitSHA string = "NA"
)

func main() {
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()
	go func() {
		defer cnc()
		<-ctx.Done()
	}()
	slog.SetDefault(logging.Logger(os.Stdout, false, slog.LevelInfo))
	ctx = logging.AppendCtx(ctx,
		slog.Group("voxelkit",
			slog.String("name", "voxelctl"),
			slog.String("git", GitSHA),
		))
	voxelcmd.NewRoot(ctx, GitSHA).Execute()
}
