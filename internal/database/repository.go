package database

// Repository groups the board, lane and card repositories over one handle.
// Bind it to a *sql.Tx inside WithTx to make every call part of one unit of work.
type Repository struct {
	Boards *BoardRepo
	Lanes  *LaneRepo
	Cards  *CardRepo
}

// NewRepository creates a new Repository instance wrapping the given handle.
func NewRepository(db DBTX) *Repository {
	return &Repository{
		Boards: &BoardRepo{db: db},
		Lanes:  &LaneRepo{db: db},
		Cards:  &CardRepo{db: db},
	}
}
