// drag3d renders a procedurally generated terrain with a free-look camera.
//
// Usage:
//
//	drag3d [run] [flags]       interactive view in the terminal
//	drag3d snapshot [flags]    render frames headlessly and save a PNG
//	drag3d export [flags]      write the scene meshes to a .glb file
//
// Controls:
//
//	W/S         Move forward/backward
//	A/D         Move left/right
//	Space       Move up
//	Shift/C     Move down
//	Mouse drag  Look around
//	Esc/Q       Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}
