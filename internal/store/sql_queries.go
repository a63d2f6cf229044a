package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createTeam = `INSERT INTO teams (account_id, public_key, private_key, approved_roles, helpdesk, helpdesk_settings, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	getTeamByAccountID = `SELECT account_id, public_key, private_key, approved_roles, helpdesk, helpdesk_settings, created_at
    FROM teams
    WHERE account_id = $1;`

	listTeams = `SELECT account_id, public_key, private_key, approved_roles, helpdesk, helpdesk_settings, created_at
    FROM teams
    ORDER BY created_at;`

	deleteTeam = `DELETE FROM teams
    WHERE account_id = $1;`

	getIdentityKeyPair = `SELECT public_key, private_key, sign_public_key, sign_private_key
    FROM identity_keys
    WHERE id = 1;`

	saveIdentityKeyPair = `INSERT INTO identity_keys (id, public_key, private_key, sign_public_key, sign_private_key, updated_at)
    VALUES (1, $1, $2, $3, $4, $5)
    ON CONFLICT (id) DO UPDATE SET
        public_key = excluded.public_key,
        private_key = excluded.private_key,
        sign_public_key = excluded.sign_public_key,
        sign_private_key = excluded.sign_private_key,
        updated_at = excluded.updated_at;`

	deleteIdentityKeyPair = `DELETE FROM identity_keys
    WHERE id = 1;`
)

// buildTeamUpdateQuery dynamically builds an UPDATE for a full credential
// replacement. Column values arrive pre-sealed and pre-marshalled in row.
// Dollar placeholders are understood by both supported backends.
func buildTeamUpdateQuery(row teamRow) (string, []any, error) {
	return sq.Update("teams").
		SetMap(sq.Eq{
			"public_key":        row.PublicKey,
			"private_key":       row.PrivateKey,
			"approved_roles":    row.ApprovedRoles,
			"helpdesk":          row.Helpdesks,
			"helpdesk_settings": row.HelpdeskSettings,
		}).
		Where(sq.Eq{"account_id": row.AccountID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
