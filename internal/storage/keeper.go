package storage

// HighScoreKeeper exposes the persisted high score to a round. A nil store
// behaves as an empty, write-discarding one so games run without a database.
type HighScoreKeeper struct {
	store *Store
}

// NewHighScoreKeeper wraps store, which may be nil.
func NewHighScoreKeeper(store *Store) *HighScoreKeeper {
	return &HighScoreKeeper{store: store}
}

// HighScore returns the stored high score.
func (k *HighScoreKeeper) HighScore() (int, error) {
	if k == nil || k.store == nil {
		return 0, nil
	}
	return k.store.HighScore()
}

// SetHighScore persists a new high score.
func (k *HighScoreKeeper) SetHighScore(score int) error {
	if k == nil || k.store == nil {
		return nil
	}
	return k.store.SetHighScore(score)
}
