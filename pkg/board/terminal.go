package board

// IsCheckmate reports whether the color is in check with no legal move.
func (b *Board) IsCheckmate(c Color) bool {
	return b.IsInCheck(c) && !b.HasLegalMove(c)
}

// IsStalemate reports whether the color has no legal move without being in
// check.
func (b *Board) IsStalemate(c Color) bool {
	return !b.IsInCheck(c) && !b.HasLegalMove(c)
}
