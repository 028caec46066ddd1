// Command hmathdemo renders a spinning wireframe cube to the terminal.
//
// The demo drives the full transform pipeline: a model matrix composed
// from a position, an axis-angle quaternion and a scale, a perspective
// projection, the homogeneous divide, and the mapping from normalized
// device coordinates to character cells. Depth shades each plotted point
// through an ASCII ramp, so nearer edges render denser.
//
// Usage:
//
//	hmathdemo [flags]
//
// Flags:
//
//	-width    framebuffer width in character cells (default 72)
//	-height   framebuffer height in character cells (default 36)
//	-frames   number of frames to render (default 300)
//	-fov      vertical field of view in degrees (default 70)
//	-distance camera distance from the cube center (default 4)
//	-seed     random seed for the spin axis; 0 uses a fixed axis
//	-tint     hex wireframe color for 24-bit terminals, e.g. "#ffcc00"
//	-delay    pause between frames (default 33ms)
//	-v        enable debug logging to stderr
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	hm "github.com/technologists-team/hypercube-mathematics"
	"github.com/technologists-team/hypercube-mathematics/hrand"
)

var (
	width    = flag.Int("width", 72, "framebuffer width in character cells")
	height   = flag.Int("height", 36, "framebuffer height in character cells")
	frames   = flag.Int("frames", 300, "number of frames to render")
	fov      = flag.Float64("fov", 70, "vertical field of view in degrees")
	distance = flag.Float64("distance", 4, "camera distance from the cube center")
	seed     = flag.Uint64("seed", 0, "random seed for the spin axis; 0 uses a fixed axis")
	tint     = flag.String("tint", "", "hex wireframe color for 24-bit terminals, e.g. #ffcc00")
	delay    = flag.Duration("delay", 33*time.Millisecond, "pause between frames")
	verbose  = flag.Bool("v", false, "enable debug logging to stderr")
)

// cubeVertices are the corners of a unit cube centered on the origin.
var cubeVertices = [8]hm.Vector3{
	hm.NewVector3(-1, -1, -1),
	hm.NewVector3(1, -1, -1),
	hm.NewVector3(1, 1, -1),
	hm.NewVector3(-1, 1, -1),
	hm.NewVector3(-1, -1, 1),
	hm.NewVector3(1, -1, 1),
	hm.NewVector3(1, 1, 1),
	hm.NewVector3(-1, 1, 1),
}

// cubeEdges indexes vertex pairs: four edges per face ring plus the four
// connecting struts.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// depthRamp shades plotted points from near to far.
const depthRamp = "@%#*+=-:."

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *width < 8 || *height < 4 {
		log.Fatalf("framebuffer %dx%d is too small, need at least 8x4", *width, *height)
	}
	if *frames < 1 {
		log.Fatalf("invalid -frames %d, need at least 1", *frames)
	}

	var colorOn, colorOff string
	if *tint != "" {
		c, err := hm.ParseColorHex(*tint)
		if err != nil {
			log.Fatalf("invalid -tint: %v", err)
		}
		colorOn, colorOff = ansiForeground(c), "\x1b[0m"
	}

	axis := hm.NewVector3(1, 1, 0.3)
	if *seed != 0 {
		axis = hrand.New(*seed).UnitVector3()
	}
	logger.Debug("spin axis chosen", "axis", axis, "seed", *seed)

	projection := hm.NewMatrix4x4Perspective(
		hm.AngleFromDegrees(*fov),
		cellAspect(*width, *height),
		0.1, 100,
	)
	logger.Debug("projection built",
		"fov_deg", *fov, "aspect", cellAspect(*width, *height))

	fb := newFramebuffer(*width, *height)
	fmt.Print("\x1b[2J")
	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		rotation := hm.NewQuaternionAxisAngle(axis, hm.AngleFromDegrees(float64(frame)*3))
		model := hm.NewMatrix4x4Transform(
			hm.NewVector3(0, 0, -float32(*distance)),
			rotation,
			hm.Vector3One,
		)
		fb.clear()
		drawCube(fb, projection.Multiply(model))

		fmt.Print("\x1b[H", colorOn)
		fb.flush(os.Stdout)
		fmt.Print(colorOff)
		time.Sleep(*delay)
	}
	log.Printf("rendered %d frames in %v", *frames, time.Since(start).Round(time.Millisecond))
}

// cellAspect returns the projection aspect ratio corrected for terminal
// cells being roughly twice as tall as they are wide.
func cellAspect(width, height int) float32 {
	return float32(width) / (float32(height) * 2)
}

// ansiForeground returns the 24-bit foreground escape for c.
func ansiForeground(c hm.Color) string {
	r := uint8(hm.Clamp(c.R, 0, 1)*255 + 0.5)
	g := uint8(hm.Clamp(c.G, 0, 1)*255 + 0.5)
	b := uint8(hm.Clamp(c.B, 0, 1)*255 + 0.5)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// framebuffer is a dense grid of depth-shaded cells. Each cell holds a
// ramp index, or -1 when empty; lower indexes are nearer the camera.
type framebuffer struct {
	width, height int
	cells         []int8
	line          []byte
}

func newFramebuffer(width, height int) *framebuffer {
	fb := &framebuffer{
		width:  width,
		height: height,
		cells:  make([]int8, width*height),
		line:   make([]byte, width+1),
	}
	fb.clear()
	return fb
}

func (fb *framebuffer) clear() {
	for i := range fb.cells {
		fb.cells[i] = -1
	}
}

// plot shades the cell containing the normalized device coordinate.
// Points outside the viewport are dropped, and a nearer shade is never
// overwritten by a farther one.
func (fb *framebuffer) plot(ndc hm.Vector3) {
	col := int((ndc.X*0.5 + 0.5) * float32(fb.width-1))
	row := int((1 - (ndc.Y*0.5 + 0.5)) * float32(fb.height-1))
	if col < 0 || col >= fb.width || row < 0 || row >= fb.height {
		return
	}
	shade := int8(hm.Clamp(ndc.Z, 0, 1) * float32(len(depthRamp)-1))
	if at := fb.cells[row*fb.width+col]; at < 0 || shade < at {
		fb.cells[row*fb.width+col] = shade
	}
}

func (fb *framebuffer) flush(w *os.File) {
	fb.line[fb.width] = '\n'
	for row := 0; row < fb.height; row++ {
		for col := 0; col < fb.width; col++ {
			if shade := fb.cells[row*fb.width+col]; shade >= 0 {
				fb.line[col] = depthRamp[shade]
			} else {
				fb.line[col] = ' '
			}
		}
		w.Write(fb.line)
	}
}

// drawCube projects every cube edge through mvp and rasterizes it.
func drawCube(fb *framebuffer, mvp hm.Matrix4x4) {
	for _, edge := range cubeEdges {
		a := mvp.Transform(hm.NewVector4From3(cubeVertices[edge[0]], 1))
		b := mvp.Transform(hm.NewVector4From3(cubeVertices[edge[1]], 1))
		drawEdge(fb, a, b)
	}
}

// drawEdge samples the segment in clip space and divides per sample, so
// the plotted spacing stays perspective-correct along the edge.
func drawEdge(fb *framebuffer, a, b hm.Vector4) {
	steps := fb.width + fb.height
	for i := 0; i <= steps; i++ {
		p := a.Lerp(b, float32(i)/float32(steps))
		if p.W < 1e-3 {
			continue
		}
		fb.plot(p.Vector3().DivScalar(p.W))
	}
}
