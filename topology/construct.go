package topology

// New builds a Topology of the given kind over n nodes. height and
// width are only consulted for GridFour/GridEight, and must satisfy
// height*width == n; any other combination, or an unrecognized kind,
// returns ErrInvalidTopology.
func New(kind Kind, n int, height, width int) (Topology, error) {
	switch kind {
	case None:
		return &noneTopology{n: n}, nil
	case AllToAll:
		return &allToAllTopology{n: n}, nil
	case ListBidir:
		return newListBidir(n), nil
	case GridFour:
		if height*width != n {
			return nil, ErrInvalidTopology
		}
		return newGrid(height, width, false), nil
	case GridEight:
		if height*width != n {
			return nil, ErrInvalidTopology
		}
		return newGrid(height, width, true), nil
	case Dynamic:
		return newDynamic(n), nil
	default:
		return nil, ErrInvalidTopology
	}
}

// NewDynamic is a convenience constructor for the common case of
// building a Dynamic topology without the grid-only height/width
// parameters.
func NewDynamic(n int) Mutable {
	return newDynamic(n)
}
