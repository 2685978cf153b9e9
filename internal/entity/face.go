package entity

// FaceSize is the width and height of the face grid.
const FaceSize = 8

// Cell states of the face grid.
const (
	CellOff uint8 = 0
	CellOn  uint8 = 1
)

// Face is the pet's 8x8 pixel grid, indexed [row][col].
//
// Layout of the healthy face ('0' on, '#' background):
//
//	# # # # # # # #
//	# # # # # # # #
//	# 0 0 # # 0 0 #   eyes
//	# 0 0 # # 0 0 #   eyes
//	# # # # # # # #
//	# 0 # # # # 0 #   mouth
//	# # 0 0 0 0 # #   mouth
//	# # # # # # # #   tongue
type Face [FaceSize][FaceSize]uint8

// On reports whether the cell at row, col is lit. Out of range cells are off.
func (f Face) On(row, col int) bool {
	if row < 0 || row >= FaceSize || col < 0 || col >= FaceSize {
		return false
	}
	return f[row][col] == CellOn
}

var eyeCols = [...]int{1, 2, 5, 6}

// draw overwrites the eyes, mouth and tongue regions from the status flags.
// The tongue is drawn last and overlaps the mouth's lower row.
func (f *Face) draw(s Status) {
	f.drawEyes(s.Sick)
	f.drawMouth(s.Hungry)
	f.drawTongue(s.Poisoned)
}

// drawEyes renders half-closed eyes when sick.
func (f *Face) drawEyes(sick bool) {
	top := CellOn
	if sick {
		top = CellOff
	}
	for _, col := range eyeCols {
		f[2][col] = top
		f[3][col] = CellOn
	}
}

// drawMouth renders an open mouth when hungry and a smile otherwise.
func (f *Face) drawMouth(hungry bool) {
	for col := 1; col <= 6; col++ {
		edge := col == 1 || col == 6
		if hungry || edge {
			f[5][col] = CellOn
		} else {
			f[5][col] = CellOff
		}
	}
	lower := CellOn
	if hungry {
		lower = CellOff
	}
	for col := 2; col <= 5; col++ {
		f[6][col] = lower
	}
}

// drawTongue sticks the tongue out when poisoned.
func (f *Face) drawTongue(poisoned bool) {
	if poisoned {
		f[6][3], f[6][4] = CellOn, CellOn
		f[7][3], f[7][4] = CellOn, CellOn
		return
	}
	f[7][3], f[7][4] = CellOff, CellOff
}
