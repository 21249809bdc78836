// Package tagging keeps the tag directory of the last-level cache model.
package tagging

// A Block of a cache is the information that is associated with a cache line.
type Block struct {
	Tag     uint64
	SetID   int
	WayID   int
	IsValid bool
	IsDirty bool
}

// A Set is a list of blocks where a certain piece memory can be stored at.
type Set struct {
	Blocks []Block
}

// TagArray is the tag directory. Tags are block addresses.
type TagArray interface {
	Lookup(blockAddr uint64) (Block, bool)
	Update(block Block)
	GetSet(blockAddr uint64) (set *Set, setID int)
	FirstInvalid(setID int) (wayID int, ok bool)
	Reset()
}

// NewTagArray creates a tag directory with every block invalid.
func NewTagArray(numSets, numWays, blockSize int) *TagArrayImpl {
	t := &TagArrayImpl{
		NumSets:   numSets,
		NumWays:   numWays,
		BlockSize: blockSize,
	}

	t.Reset()

	return t
}

// TagArrayImpl is the default TagArray.
type TagArrayImpl struct {
	NumSets   int
	NumWays   int
	BlockSize int
	Sets      []Set
}

// TotalSize returns the maximum number of bytes can be stored in the cache.
func (d *TagArrayImpl) TotalSize() uint64 {
	return uint64(d.NumSets) * uint64(d.NumWays) * uint64(d.BlockSize)
}

// GetSet returns the set that a block address maps to.
func (d *TagArrayImpl) GetSet(blockAddr uint64) (set *Set, setID int) {
	setID = int(blockAddr % uint64(d.NumSets))
	set = &d.Sets[setID]

	return
}

// Lookup finds the valid block holding blockAddr.
func (d *TagArrayImpl) Lookup(blockAddr uint64) (Block, bool) {
	set, _ := d.GetSet(blockAddr)
	for _, block := range set.Blocks {
		if block.IsValid && block.Tag == blockAddr {
			return block, true
		}
	}

	return Block{}, false
}

// Update overwrites the block at its set and way.
func (d *TagArrayImpl) Update(block Block) {
	d.Sets[block.SetID].Blocks[block.WayID] = block
}

// FirstInvalid returns the lowest invalid way of a set.
func (d *TagArrayImpl) FirstInvalid(setID int) (int, bool) {
	for i, block := range d.Sets[setID].Blocks {
		if !block.IsValid {
			return i, true
		}
	}

	return 0, false
}

// Reset marks all the blocks invalid.
func (d *TagArrayImpl) Reset() {
	d.Sets = make([]Set, d.NumSets)
	for i := 0; i < d.NumSets; i++ {
		d.Sets[i].Blocks = make([]Block, d.NumWays)
		for j := 0; j < d.NumWays; j++ {
			d.Sets[i].Blocks[j] = Block{SetID: i, WayID: j}
		}
	}
}
