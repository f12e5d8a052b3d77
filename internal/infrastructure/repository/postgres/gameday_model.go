package postgres

import (
	"database/sql"
	"time"

	"github.com/footyclub/records/internal/domain/gameday"
)

type gameDayTableModel struct {
	ID       int64        `db:"id"`
	Year     int          `db:"year"`
	Date     time.Time    `db:"date"`
	Game     bool         `db:"game"`
	MailSent sql.NullTime `db:"mail_sent"`
}

func (m gameDayTableModel) toDomain() gameday.GameDay {
	d := gameday.GameDay{
		ID:   m.ID,
		Year: m.Year,
		Date: m.Date,
		Game: m.Game,
	}
	if m.MailSent.Valid {
		sent := m.MailSent.Time
		d.MailSent = &sent
	}
	return d
}
