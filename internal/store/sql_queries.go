package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/everhold/everhold/models"
)

const (
	upsertUser = `INSERT INTO users (user_id, clerk_id, email, first_name, last_name, image_url)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (clerk_id) DO UPDATE SET
        email = excluded.email,
        first_name = excluded.first_name,
        last_name = excluded.last_name,
        image_url = excluded.image_url,
        updated_at = CURRENT_TIMESTAMP
    RETURNING user_id, clerk_id, email, first_name, last_name, image_url, created_at, updated_at;`

	findUserByClerkID = `SELECT user_id, clerk_id, email, first_name, last_name, image_url, created_at, updated_at
    FROM users
    WHERE clerk_id = $1;`

	findUserByID = `SELECT user_id, clerk_id, email, first_name, last_name, image_url, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	deleteUserByClerkID = `DELETE FROM users WHERE clerk_id = $1;`

	legacyPageColumns = `page_id, user_id, slug, page_type, honouree_name, creator_name,
        date_of_birth, has_transitioned, date_of_passing, relationship, story_name, story,
        honouree_photo, cover_photo, background_image, video_url,
        heading_font, body_font, accent_font, created_at, updated_at`

	createPage = `INSERT INTO legacy_pages (
            page_id, user_id, slug, page_type, honouree_name, creator_name,
            date_of_birth, has_transitioned, date_of_passing, relationship, story_name, story,
            honouree_photo, cover_photo, background_image, video_url,
            heading_font, body_font, accent_font
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING created_at, updated_at;`

	// Page type and owner are fixed at creation and never rewritten.
	updatePage = `UPDATE legacy_pages SET
            slug = $1,
            honouree_name = $2,
            creator_name = $3,
            date_of_birth = $4,
            has_transitioned = $5,
            date_of_passing = $6,
            relationship = $7,
            story_name = $8,
            story = $9,
            honouree_photo = $10,
            cover_photo = $11,
            background_image = $12,
            video_url = $13,
            heading_font = $14,
            body_font = $15,
            accent_font = $16,
            updated_at = CURRENT_TIMESTAMP
        WHERE page_id = $17;`

	deletePage = `DELETE FROM legacy_pages WHERE page_id = $1;`

	findPageBySlug = `SELECT ` + legacyPageColumns + `
    FROM legacy_pages
    WHERE slug = $1;`

	findPageByUserID = `SELECT ` + legacyPageColumns + `
    FROM legacy_pages
    WHERE user_id = $1;`

	getGeneralKnowledge = `SELECT knowledge_id, page_id, personality, "values", beliefs
    FROM general_knowledge
    WHERE page_id = $1;`

	getMemorialDetails = `SELECT details_id, page_id, funeral_wishes, obituary, funeral_home,
        viewing_details, procession_details, service_details, wake_details, final_resting_place,
        eulogy, order_of_service, family_message, memorial_video, tributes, message_from_honouree
    FROM memorial_details
    WHERE page_id = $1;`

	getMediaItems = `SELECT media_id, page_id, media_type, url, date_taken, location, description, category, position
    FROM media_items
    WHERE page_id = $1
    ORDER BY position;`

	getEvents = `SELECT event_id, page_id, name, event_date, event_time, rsvp_by, location, google_maps_code, external_url, message, position
    FROM events
    WHERE page_id = $1
    ORDER BY position;`

	getRelationships = `SELECT relationship_id, page_id, relation_type, is_custom_type, name, position
    FROM relationships
    WHERE page_id = $1
    ORDER BY position;`

	getInsights = `SELECT insight_id, page_id, message, position
    FROM insights
    WHERE page_id = $1
    ORDER BY position;`

	getQuotes = `SELECT quote_id, page_id, quote_text, author, position
    FROM quotes
    WHERE page_id = $1
    ORDER BY position;`

	insertMediaItem = `INSERT INTO media_items (media_id, page_id, media_type, url, date_taken, location, description, category, position)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	insertEvent = `INSERT INTO events (event_id, page_id, name, event_date, event_time, rsvp_by, location, google_maps_code, external_url, message, position)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	insertRelationship = `INSERT INTO relationships (relationship_id, page_id, relation_type, is_custom_type, name, position)
    VALUES ($1, $2, $3, $4, $5, $6);`

	insertInsight = `INSERT INTO insights (insight_id, page_id, message, position)
    VALUES ($1, $2, $3, $4);`

	insertQuote = `INSERT INTO quotes (quote_id, page_id, quote_text, author, position)
    VALUES ($1, $2, $3, $4, $5);`

	deleteMediaItems    = `DELETE FROM media_items WHERE page_id = $1;`
	deleteEvents        = `DELETE FROM events WHERE page_id = $1;`
	deleteRelationships = `DELETE FROM relationships WHERE page_id = $1;`
	deleteInsights      = `DELETE FROM insights WHERE page_id = $1;`
	deleteQuotes        = `DELETE FROM quotes WHERE page_id = $1;`
)

// patchColumn pairs a column name with the patch pointer covering it. A nil
// pointer means the submission never mentioned the field.
type patchColumn struct {
	name  string
	value *string
}

func generalKnowledgeColumns(p models.GeneralKnowledgePatch) []patchColumn {
	return []patchColumn{
		{`personality`, p.Personality},
		{`"values"`, p.Values},
		{`beliefs`, p.Beliefs},
	}
}

func memorialDetailsColumns(p models.MemorialDetailsPatch) []patchColumn {
	return []patchColumn{
		{`funeral_wishes`, p.FuneralWishes},
		{`obituary`, p.Obituary},
		{`funeral_home`, p.FuneralHome},
		{`viewing_details`, p.ViewingDetails},
		{`procession_details`, p.ProcessionDetails},
		{`service_details`, p.ServiceDetails},
		{`wake_details`, p.WakeDetails},
		{`final_resting_place`, p.FinalRestingPlace},
		{`eulogy`, p.Eulogy},
		{`order_of_service`, p.OrderOfService},
		{`family_message`, p.FamilyMessage},
		{`memorial_video`, p.MemorialVideo},
		{`tributes`, p.Tributes},
		{`message_from_honouree`, p.MessageFromHonouree},
	}
}

// nullIfEmpty maps a present patch pointer to its SQL value: pointer to ""
// clears the column to NULL, anything else overwrites.
func nullIfEmpty(p *string) any {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

// buildSingletonUpdate builds a dynamic UPDATE over the given singleton
// table carrying only the columns the patch mentions. Columns absent from
// the patch keep their stored value.
func buildSingletonUpdate(table, pageID string, columns []patchColumn) (string, []any, error) {
	b := squirrel.Update(table).PlaceholderFormat(squirrel.Dollar)
	for _, c := range columns {
		if c.value != nil {
			b = b.Set(c.name, nullIfEmpty(c.value))
		}
	}

	return b.Where(squirrel.Eq{"page_id": pageID}).ToSql()
}

// buildSingletonInsert builds an INSERT for a singleton row that does not
// exist yet. Only the columns the patch mentions are written; the rest stay
// NULL.
func buildSingletonInsert(table, idColumn, id, pageID string, columns []patchColumn) (string, []any, error) {
	cols := []string{idColumn, "page_id"}
	vals := []any{id, pageID}
	for _, c := range columns {
		if c.value != nil {
			cols = append(cols, c.name)
			vals = append(vals, nullIfEmpty(c.value))
		}
	}

	return squirrel.Insert(table).
		Columns(cols...).
		Values(vals...).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
