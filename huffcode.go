package huffcode

// Codes counts seq and returns the Huffman code for each distinct symbol.
// An empty seq yields an empty CodeTable and no error.
func Codes(seq []Symbol) (CodeTable, error) {
	ct, _, err := CodesFor(Count(seq))
	return ct, err
}

// CodesFor is like Codes, but starts from an existing FrequencyTable.  It
// also returns the tree, which callers may use to decode.
//
// An empty ft yields an empty CodeTable, the empty Tree, and no error.
//
func CodesFor(ft FrequencyTable) (CodeTable, Tree, error) {
	if len(ft) == 0 {
		return CodeTable{}, Tree{}, nil
	}

	t, err := BuildTree(ft)
	if err != nil {
		return nil, Tree{}, err
	}

	ct, err := AssignCodes(t)
	if err != nil {
		return nil, Tree{}, err
	}

	return ct, t, nil
}
