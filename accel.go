package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrAcceleratorUnavailable reports a failure to acquire the accelerator
// device. The accelerated attempt fails outright; falling back to the host
// strategy is a caller policy, never an implicit catch here.
var ErrAcceleratorUnavailable = errors.New("accelerator unavailable")

// AccelBackend offloads single-qubit gate applications to a pool of parallel
// execution units. Amplitudes and gate coefficients cross the offload
// boundary as flat real/imaginary float64 buffers, the kernel runs
// bulk-synchronously over a grid of index blocks, and the result is only
// read back after every unit has finished.
type AccelBackend struct {
	units int

	mu     sync.Mutex
	closed bool
	active sync.WaitGroup
}

// NewAccelBackend returns an accelerator strategy with the given number of
// parallel execution units. units <= 0 selects one unit per CPU.
func NewAccelBackend(units int) *AccelBackend {
	if units <= 0 {
		units = runtime.NumCPU()
	}
	return &AccelBackend{units: units}
}

func (b *AccelBackend) Name() string { return "accel" }

// Close releases the backend, waiting for in-flight kernels to drain.
// Applications issued after Close fail with ErrAcceleratorUnavailable.
func (b *AccelBackend) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.active.Wait()
}

func (b *AccelBackend) ApplySingleQubit(s *StateVector, gate Matrix2, target int) (*StateVector, error) {
	dev, err := b.acquire()
	if err != nil {
		return nil, err
	}
	defer dev.release()

	dim := len(s.Amplitudes)
	args := &kernelArgs{
		outRe:     make([]float64, dim),
		outIm:     make([]float64, dim),
		target:    target,
		numQubits: s.NumQubits,
	}
	args.inRe, args.inIm = marshalState(s)
	args.gateRe, args.gateIm = marshalMatrix(gate)

	if err := dev.runKernel(args); err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}
	return unmarshalState(args.outRe, args.outIm, s.NumQubits), nil
}

// acquire opens a device context for one gate application. Contexts are
// scoped per call; release must run on every exit path.
func (b *AccelBackend) acquire() (*device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("%w: backend closed", ErrAcceleratorUnavailable)
	}
	b.active.Add(1)
	return &device{backend: b, units: b.units}, nil
}

// device is the per-application accelerator context.
type device struct {
	backend *AccelBackend
	units   int
}

func (d *device) release() {
	d.backend.active.Done()
}

// kernelArgs is the flat-buffer form of one kernel launch: input and output
// amplitudes split into real/imaginary planes, the 2×2 gate row-major in two
// four-entry planes, plus the scalar target and qubit count.
type kernelArgs struct {
	inRe, inIm     []float64
	outRe, outIm   []float64
	gateRe, gateIm []float64
	target         int
	numQubits      int
}

// runKernel executes the single-qubit transform over a grid of index blocks,
// one goroutine per block, and waits for the whole grid before returning.
func (d *device) runKernel(args *kernelArgs) error {
	dim := 1 << args.numQubits
	per := (dim + d.units - 1) / d.units

	var g errgroup.Group
	for start := 0; start < dim; start += per {
		start := start
		end := min(start+per, dim)
		g.Go(func() error {
			kernelBlock(args, start, end)
			return nil
		})
	}
	return g.Wait()
}

// kernelBlock computes output amplitudes for indices [start, end). It touches
// only the flat buffers, the same contract a compiled device kernel sees, and
// writes each output index exactly once so blocks never overlap.
func kernelBlock(args *kernelArgs, start, end int) {
	bit := 1 << args.target
	for i := start; i < end; i++ {
		b := (i >> args.target) & 1
		src0 := i &^ bit
		src1 := i | bit
		g0re, g0im := args.gateRe[2*b], args.gateIm[2*b]
		g1re, g1im := args.gateRe[2*b+1], args.gateIm[2*b+1]
		args.outRe[i] = g0re*args.inRe[src0] - g0im*args.inIm[src0] +
			g1re*args.inRe[src1] - g1im*args.inIm[src1]
		args.outIm[i] = g0re*args.inIm[src0] + g0im*args.inRe[src0] +
			g1re*args.inIm[src1] + g1im*args.inRe[src1]
	}
}

// marshalState splits amplitudes into flat real/imaginary transfer buffers.
func marshalState(s *StateVector) (re, im []float64) {
	re = make([]float64, len(s.Amplitudes))
	im = make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		re[i] = real(amp)
		im[i] = imag(amp)
	}
	return re, im
}

// unmarshalState rebuilds a state vector from flat transfer buffers.
func unmarshalState(re, im []float64, numQubits int) *StateVector {
	amps := make([]Complex, len(re))
	for i := range amps {
		amps[i] = complex(re[i], im[i])
	}
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// marshalMatrix flattens a 2×2 gate row-major into real/imaginary planes.
func marshalMatrix(m Matrix2) (re, im []float64) {
	re = make([]float64, 4)
	im = make([]float64, 4)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			re[2*r+c] = real(m[r][c])
			im[2*r+c] = imag(m[r][c])
		}
	}
	return re, im
}
