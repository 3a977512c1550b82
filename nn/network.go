package nn

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dylhunn/dragontoothmg"
)

// Network dimensions and quantization constants. Hidden weights are
// int16, output weights int8; activations pass through a clipped ReLU
// so the int32 output accumulator cannot overflow.
const (
	HiddenSize = 128

	hiddenQuantShift = 6
	outputScale      = 600
)

// Network is the quantized 768 -> HiddenSize -> 1 evaluator.
type Network struct {
	HiddenWeights [InputSize][HiddenSize]int16
	HiddenBias    [HiddenSize]int16
	OutputWeights [HiddenSize]int8
	OutputBias    int32
}

// NewNetwork returns a zero-weight network; load weights or call
// InitRandom before evaluating.
func NewNetwork() *Network {
	return &Network{}
}

// clampedReLU clamps to [0, 127] for quantized inference.
func clampedReLU(x int16) int8 {
	if x < 0 {
		return 0
	}
	if x > 127 {
		return 127
	}
	return int8(x)
}

// Evaluate runs inference on a position. The score is in centipawns
// from the side to move's perspective, matching the sign convention of
// the classical evaluator.
func (n *Network) Evaluate(b *dragontoothmg.Board) int32 {
	var acc [HiddenSize]int16
	acc = n.HiddenBias
	for _, f := range ActiveFeatures(b) {
		w := &n.HiddenWeights[f]
		for i := 0; i < HiddenSize; i++ {
			acc[i] += w[i]
		}
	}

	output := n.OutputBias
	for i := 0; i < HiddenSize; i++ {
		output += int32(clampedReLU(acc[i])) * int32(n.OutputWeights[i])
	}
	return output * outputScale >> (hiddenQuantShift + 8)
}

// InitRandom fills the network with small reproducible pseudo-random
// weights. Good enough for a playable evaluator in tests and harnesses
// when no trained weight file is available.
func (n *Network) InitRandom(seed int64) {
	state := uint64(seed)
	next := func() int16 {
		state = state*6364136223846793005 + 1442695040888963407
		return int16((state>>48)&0xFF) - 128
	}

	for i := 0; i < InputSize; i++ {
		for j := 0; j < HiddenSize; j++ {
			n.HiddenWeights[i][j] = next() >> 5
		}
	}
	for i := 0; i < HiddenSize; i++ {
		n.HiddenBias[i] = next() >> 3
	}
	for i := 0; i < HiddenSize; i++ {
		v := next() >> 6
		if v > 127 {
			v = 127
		} else if v < -128 {
			v = -128
		}
		n.OutputWeights[i] = int8(v)
	}
	n.OutputBias = int32(next())
}

// Weight file format: header then raw little-endian weight blocks in
// declaration order.
const (
	weightsMagic   = 0x424E4E31 // "1NNB"
	weightsVersion = 1
)

type fileHeader struct {
	Magic      uint32
	Version    uint32
	InputSize  uint32
	HiddenSize uint32
}

// Save writes the weights to a binary file.
func (n *Network) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create weights file: %w", err)
	}
	defer f.Close()
	return n.write(f)
}

// Load reads weights from a binary file written by Save.
func (n *Network) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open weights file: %w", err)
	}
	defer f.Close()
	return n.Read(f)
}

func (n *Network) write(w io.Writer) error {
	header := fileHeader{
		Magic:      weightsMagic,
		Version:    weightsVersion,
		InputSize:  InputSize,
		HiddenSize: HiddenSize,
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < InputSize; i++ {
		if err := binary.Write(w, binary.LittleEndian, &n.HiddenWeights[i]); err != nil {
			return fmt.Errorf("write hidden weights row %d: %w", i, err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, &n.HiddenBias); err != nil {
		return fmt.Errorf("write hidden bias: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &n.OutputWeights); err != nil {
		return fmt.Errorf("write output weights: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, &n.OutputBias); err != nil {
		return fmt.Errorf("write output bias: %w", err)
	}
	return nil
}

// Read loads weights from a reader in the Save format.
func (n *Network) Read(r io.Reader) error {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if header.Magic != weightsMagic {
		return fmt.Errorf("bad magic %#x", header.Magic)
	}
	if header.Version != weightsVersion {
		return fmt.Errorf("unsupported version %d", header.Version)
	}
	if header.InputSize != InputSize || header.HiddenSize != HiddenSize {
		return fmt.Errorf("dimension mismatch: file %dx%d, built for %dx%d",
			header.InputSize, header.HiddenSize, InputSize, HiddenSize)
	}

	for i := 0; i < InputSize; i++ {
		if err := binary.Read(r, binary.LittleEndian, &n.HiddenWeights[i]); err != nil {
			return fmt.Errorf("read hidden weights row %d: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &n.HiddenBias); err != nil {
		return fmt.Errorf("read hidden bias: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.OutputWeights); err != nil {
		return fmt.Errorf("read output weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.OutputBias); err != nil {
		return fmt.Errorf("read output bias: %w", err)
	}
	return nil
}
