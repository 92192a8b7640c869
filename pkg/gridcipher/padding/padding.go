package padding

// Filler is the sentinel appended to round a message up to a whole number of
// blocks. It is stripped from the tail on decryption, so plaintext that ends
// in Filler loses those characters.
const Filler = 'A'

// Padder defines the padding contract
type Padder interface {
	Pad(data []rune, blockSize int) []rune
	Unpad(data []rune) []rune
	Name() string
}

// FillerPadding pads with Filler and strips every trailing Filler.
type FillerPadding struct{}

var _ Padder = (*FillerPadding)(nil)

func (f *FillerPadding) Name() string {
	return "FILLER"
}

// Pad appends Filler until len(data) is a multiple of blockSize. Aligned input,
// including empty input, is returned unchanged.
func (f *FillerPadding) Pad(data []rune, blockSize int) []rune {
	return f.PadWith(data, blockSize, Filler)
}

// PadWith is Pad with a caller-chosen pad character.
func (f *FillerPadding) PadWith(data []rune, blockSize int, filler rune) []rune {
	rem := len(data) % blockSize
	if rem == 0 {
		return data
	}
	padded := make([]rune, len(data), len(data)+blockSize-rem)
	copy(padded, data)
	for i := rem; i < blockSize; i++ {
		padded = append(padded, filler)
	}
	return padded
}

// Unpad removes trailing Filler characters until a different character or
// the start of data is reached.
func (f *FillerPadding) Unpad(data []rune) []rune {
	i := len(data)
	for i > 0 && data[i-1] == Filler {
		i--
	}
	return data[:i]
}
