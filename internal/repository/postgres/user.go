package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/parazzit213/chil-life-bot/internal/domain"
)

// UserRecordRepo implements repository.UserRecords
type UserRecordRepo struct {
	db *sql.DB
}

// NewUserRecordRepo creates a new user record repository
func NewUserRecordRepo(db *sql.DB) *UserRecordRepo {
	return &UserRecordRepo{db: db}
}

// Load reads a user's record. A missing row yields a defaulted record.
func (r *UserRecordRepo) Load(userID int64) (*domain.UserRecord, error) {
	var (
		language       string
		journal        []byte
		checklists     []byte
		selfAssessment []byte
	)

	query := `SELECT language, journal, checklists, self_assessment FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&language, &journal, &checklists, &selfAssessment)

	if err == sql.ErrNoRows {
		// First interaction, nothing stored yet
		return domain.NewUserRecord(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	rec := domain.NewUserRecord(userID)
	rec.Language = domain.ParseLanguage(language)

	if len(journal) > 0 {
		if err := json.Unmarshal(journal, &rec.Journal); err != nil {
			return nil, fmt.Errorf("decode journal for user %d: %w", userID, err)
		}
	}
	if len(checklists) > 0 {
		if err := json.Unmarshal(checklists, &rec.Checklists); err != nil {
			return nil, fmt.Errorf("decode checklists for user %d: %w", userID, err)
		}
	}
	if len(selfAssessment) > 0 {
		if err := json.Unmarshal(selfAssessment, &rec.SelfAssessment); err != nil {
			return nil, fmt.Errorf("decode self_assessment for user %d: %w", userID, err)
		}
	}

	return rec, nil
}

// Save upserts the whole record for a user
func (r *UserRecordRepo) Save(rec *domain.UserRecord) error {
	journal, err := json.Marshal(rec.Journal)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	checklists, err := json.Marshal(rec.Checklists)
	if err != nil {
		return fmt.Errorf("encode checklists: %w", err)
	}
	selfAssessment, err := json.Marshal(rec.SelfAssessment)
	if err != nil {
		return fmt.Errorf("encode self_assessment: %w", err)
	}

	query := `
		INSERT INTO users (user_id, language, journal, checklists, self_assessment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET
			language = EXCLUDED.language,
			journal = EXCLUDED.journal,
			checklists = EXCLUDED.checklists,
			self_assessment = EXCLUDED.self_assessment
	`
	if _, err := r.db.Exec(query, rec.UserID, string(rec.Language), journal, checklists, selfAssessment); err != nil {
		return fmt.Errorf("save user %d: %w", rec.UserID, err)
	}
	return nil
}
