package wire

import "fmt"

// MatchGroups pairs group markers within one span using a local stack.
//
// The returned slice has one entry per record: for a StartGroup it holds the
// index of the matching EndGroup, for an EndGroup the index of its StartGroup,
// and -1 for every other record. Groups never cross span boundaries, so a
// marker left open at the end of records, or an EndGroup that does not close
// the innermost open group, is ErrUnmatchedGroup.
func MatchGroups(records []Record) ([]int, error) {
	pairs := make([]int, len(records))
	var open []int

	for i, rec := range records {
		pairs[i] = -1
		switch rec.Type {
		case WireStartGroup:
			open = append(open, i)
		case WireEndGroup:
			if len(open) == 0 {
				return nil, newDecodeError(ErrUnmatchedGroup, rec.Offset, rec.Field, "end group without start")
			}
			top := open[len(open)-1]
			if records[top].Field != rec.Field {
				return nil, newDecodeError(ErrUnmatchedGroup, rec.Offset, rec.Field,
					fmt.Sprintf("end group closes open group %d", records[top].Field))
			}
			open = open[:len(open)-1]
			pairs[top] = i
			pairs[i] = top
		}
	}

	if len(open) > 0 {
		rec := records[open[len(open)-1]]
		return nil, newDecodeError(ErrUnmatchedGroup, rec.Offset, rec.Field, "start group never closed")
	}
	return pairs, nil
}
