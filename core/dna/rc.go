package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
}

// ReverseComplement reverses s and pairs A<->T, G<->C. There is no
// fallback for other bytes: the first one found is reported.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", &InvalidBaseError{Base: b, Offset: n - 1 - i}
		}
		out[i] = c
	}
	return string(out), nil
}
