package dna

import "fmt"

// Extract returns the bases covered by p, 5'->3' as transcribed.
// Nothing is returned unless the whole range lies inside seq.
func Extract(seq string, p Position) (string, error) {
	if p.Start < 1 || p.Start > p.Stop {
		return "", &PositionError{Raw: fmt.Sprintf("%d..%d", p.Start, p.Stop), Reason: "invalid range"}
	}
	if p.Stop > len(seq) {
		return "", &PositionError{
			Raw:    fmt.Sprintf("%d..%d", p.Start, p.Stop),
			Reason: fmt.Sprintf("out of range for %d bp sequence", len(seq)),
		}
	}
	sub := seq[p.Start-1 : p.Stop]
	if p.Strand == Minus {
		return ReverseComplement(sub)
	}
	// copy so the result does not pin the whole genome in memory
	return string(append([]byte(nil), sub...)), nil
}

// Resolve parses raw and extracts it from seq.
func Resolve(seq, raw string) (string, error) {
	p, err := ParsePosition(raw)
	if err != nil {
		return "", err
	}
	return Extract(seq, p)
}
