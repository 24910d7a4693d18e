package types

// ID type aliases give each integer a domain meaning. They mirror the rows
// stored by the board service: a board owns columns and issue trackers, and
// tasks live in exactly one column.

// BoardID identifies a board
type BoardID int

// ColumnID identifies a column within a board
type ColumnID int

// TaskID identifies a task. It is stable across renders.
type TaskID int

// TrackerID identifies an issue tracker configured on a board
type TrackerID int

// ToInt converts type alias back to int for database and wire code
func (id BoardID) ToInt() int {
	return int(id)
}

func (id ColumnID) ToInt() int {
	return int(id)
}

func (id TaskID) ToInt() int {
	return int(id)
}

func (id TrackerID) ToInt() int {
	return int(id)
}
