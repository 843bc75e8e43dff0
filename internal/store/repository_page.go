package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

// pageRepository is the SQL-backed implementation of [PageRepository]. It
// owns the transactional write plans for page creation and replacement and
// assigns the UUID primary keys for every row it inserts.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (page_id, slug, user_id, etc.).
type pageRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewPageRepository constructs a [PageRepository] backed by the provided
// database connection and logger.
func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	logger.Debug().Msg("PageRepository created")
	return &pageRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreatePage inserts the page root, both singleton rows, and every child
// collection row inside one transaction. agg.PageID is generated when empty;
// generated child IDs and database-assigned timestamps are written back into
// agg before return.
//
// The owner and slug uniqueness constraints are mapped to
// [ErrPageAlreadyExists] and [ErrSlugAlreadyExists] respectively, so two
// concurrent creates for the same owner cannot both succeed.
func (p *pageRepository) CreatePage(ctx context.Context, agg *models.PageAggregate) error {
	log := logger.FromContext(ctx)

	if agg.PageID == "" {
		agg.PageID = p.ids.Generate()
	}

	tx, err := p.DB.beginTx(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.CreatePage").
			Str("user_id", agg.UserID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	queryErr := tx.QueryRowContext(ctx, createPage,
		agg.PageID,
		agg.UserID,
		agg.Slug,
		agg.PageType,
		agg.HonoureeName,
		agg.CreatorName,
		agg.DateOfBirth,
		agg.HasTransitioned,
		agg.DateOfPassing,
		agg.Relationship,
		agg.StoryName,
		agg.Story,
		agg.HonoureePhoto,
		agg.CoverPhoto,
		agg.BackgroundImage,
		agg.VideoURL,
		agg.HeadingFont,
		agg.BodyFont,
		agg.AccentFont,
	).Scan(&agg.CreatedAt, &agg.UpdatedAt)
	if queryErr != nil {
		if mapped := mapConstraintViolation(queryErr); mapped != nil {
			log.Warn().
				Str("func", "pageRepository.CreatePage").
				Str("user_id", agg.UserID).
				Str("slug", agg.Slug).
				Msg("page insert hit uniqueness constraint")
			return mapped
		}
		log.Err(queryErr).
			Str("func", "pageRepository.CreatePage").
			Str("user_id", agg.UserID).
			Msg("failed to insert page root")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	if err = p.insertSingletons(ctx, tx, agg); err != nil {
		return err
	}

	if err = p.insertCollections(ctx, tx, agg); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "pageRepository.CreatePage").
			Str("page_id", agg.PageID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "pageRepository.CreatePage").
		Str("page_id", agg.PageID).
		Str("slug", agg.Slug).
		Msg("created legacy page")

	return nil
}

// ReplacePage applies a full update to an existing page inside one
// transaction: scalars are overwritten, every child collection is deleted
// and re-inserted from agg, and the singleton sub-entities receive their
// patches. Nothing becomes visible until the commit.
func (p *pageRepository) ReplacePage(ctx context.Context, agg *models.PageAggregate, gk models.GeneralKnowledgePatch, md models.MemorialDetailsPatch) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.beginTx(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.ReplacePage").
			Str("page_id", agg.PageID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, execErr := tx.ExecContext(ctx, updatePage,
		agg.Slug,
		agg.HonoureeName,
		agg.CreatorName,
		agg.DateOfBirth,
		agg.HasTransitioned,
		agg.DateOfPassing,
		agg.Relationship,
		agg.StoryName,
		agg.Story,
		agg.HonoureePhoto,
		agg.CoverPhoto,
		agg.BackgroundImage,
		agg.VideoURL,
		agg.HeadingFont,
		agg.BodyFont,
		agg.AccentFont,
		agg.PageID,
	)
	if execErr != nil {
		if mapped := mapConstraintViolation(execErr); mapped != nil {
			log.Warn().
				Str("func", "pageRepository.ReplacePage").
				Str("page_id", agg.PageID).
				Str("slug", agg.Slug).
				Msg("page update hit uniqueness constraint")
			return mapped
		}
		log.Err(execErr).
			Str("func", "pageRepository.ReplacePage").
			Str("page_id", agg.PageID).
			Msg("failed to update page root")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}
	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrPageNotFound
	}

	for _, query := range []string{deleteMediaItems, deleteEvents, deleteRelationships, deleteInsights, deleteQuotes} {
		if _, execErr = tx.ExecContext(ctx, query, agg.PageID); execErr != nil {
			log.Err(execErr).
				Str("func", "pageRepository.ReplacePage").
				Str("page_id", agg.PageID).
				Msg("failed to clear child collection")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = p.insertCollections(ctx, tx, agg); err != nil {
		return err
	}

	if !gk.IsZero() {
		if err = p.upsertSingleton(ctx, tx, "general_knowledge", "knowledge_id", agg.PageID, generalKnowledgeColumns(gk)); err != nil {
			return err
		}
	}
	if !md.IsZero() {
		if err = p.upsertSingleton(ctx, tx, "memorial_details", "details_id", agg.PageID, memorialDetailsColumns(md)); err != nil {
			return err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "pageRepository.ReplacePage").
			Str("page_id", agg.PageID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "pageRepository.ReplacePage").
		Str("page_id", agg.PageID).
		Str("slug", agg.Slug).
		Msg("replaced legacy page")

	return nil
}

// DeletePage removes the page root row; every child row follows via
// cascading deletes.
func (p *pageRepository) DeletePage(ctx context.Context, pageID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePage, pageID)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.DeletePage").
			Str("page_id", pageID).
			Msg("failed to delete page")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrPageNotFound
	}

	log.Info().
		Str("func", "pageRepository.DeletePage").
		Str("page_id", pageID).
		Msg("deleted legacy page")

	return nil
}

// FindPageBySlug returns the page root row only.
func (p *pageRepository) FindPageBySlug(ctx context.Context, slug string) (models.LegacyPage, error) {
	log := logger.FromContext(ctx)

	var page models.LegacyPage
	err := scanLegacyPage(p.DB.QueryRowContext(ctx, findPageBySlug, slug), &page)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LegacyPage{}, ErrPageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.FindPageBySlug").
			Str("slug", slug).
			Msg("failed to query page by slug")
		return models.LegacyPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}

// FindPageByUserID returns the page root row owned by the given internal
// user id.
func (p *pageRepository) FindPageByUserID(ctx context.Context, userID string) (models.LegacyPage, error) {
	log := logger.FromContext(ctx)

	var page models.LegacyPage
	err := scanLegacyPage(p.DB.QueryRowContext(ctx, findPageByUserID, userID), &page)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LegacyPage{}, ErrPageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.FindPageByUserID").
			Str("user_id", userID).
			Msg("failed to query page by owner")
		return models.LegacyPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}

// GetPageBySlug loads the full aggregate: root row, owner mirror, singleton
// sub-entities, and all child collections in stored order.
func (p *pageRepository) GetPageBySlug(ctx context.Context, slug string) (models.PageAggregate, error) {
	log := logger.FromContext(ctx)

	page, err := p.FindPageBySlug(ctx, slug)
	if err != nil {
		return models.PageAggregate{}, err
	}

	agg := models.PageAggregate{LegacyPage: page}

	var owner models.User
	ownerErr := p.DB.QueryRowContext(ctx, findUserByID, page.UserID).Scan(
		&owner.UserID,
		&owner.ClerkID,
		&owner.Email,
		&owner.FirstName,
		&owner.LastName,
		&owner.ImageURL,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if ownerErr != nil && !errors.Is(ownerErr, sql.ErrNoRows) {
		log.Err(ownerErr).
			Str("func", "pageRepository.GetPageBySlug").
			Str("page_id", page.PageID).
			Msg("failed to query page owner")
		return models.PageAggregate{}, fmt.Errorf("%w: %w", ErrExecutingQuery, ownerErr)
	}
	if ownerErr == nil {
		agg.User = &owner
	}

	if agg.GeneralKnowledge, err = p.loadGeneralKnowledge(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.MemorialDetails, err = p.loadMemorialDetails(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.MediaItems, err = p.loadMediaItems(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.Events, err = p.loadEvents(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.Relationships, err = p.loadRelationships(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.Insights, err = p.loadInsights(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}
	if agg.Quotes, err = p.loadQuotes(ctx, page.PageID); err != nil {
		return models.PageAggregate{}, err
	}

	return agg, nil
}

func scanLegacyPage(row *sql.Row, page *models.LegacyPage) error {
	return row.Scan(
		&page.PageID,
		&page.UserID,
		&page.Slug,
		&page.PageType,
		&page.HonoureeName,
		&page.CreatorName,
		&page.DateOfBirth,
		&page.HasTransitioned,
		&page.DateOfPassing,
		&page.Relationship,
		&page.StoryName,
		&page.Story,
		&page.HonoureePhoto,
		&page.CoverPhoto,
		&page.BackgroundImage,
		&page.VideoURL,
		&page.HeadingFont,
		&page.BodyFont,
		&page.AccentFont,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
}

// insertSingletons writes the general_knowledge and memorial_details rows
// for a freshly created page. Both rows exist for every page regardless of
// type; fields the submission never mentioned stay NULL.
func (p *pageRepository) insertSingletons(ctx context.Context, tx *sql.Tx, agg *models.PageAggregate) error {
	log := logger.FromContext(ctx)

	var gk models.GeneralKnowledgePatch
	if agg.GeneralKnowledge != nil {
		gk = models.GeneralKnowledgePatch{
			Personality: agg.GeneralKnowledge.Personality,
			Values:      agg.GeneralKnowledge.Values,
			Beliefs:     agg.GeneralKnowledge.Beliefs,
		}
	}

	var md models.MemorialDetailsPatch
	if agg.MemorialDetails != nil {
		d := agg.MemorialDetails
		md = models.MemorialDetailsPatch{
			FuneralWishes:       d.FuneralWishes,
			Obituary:            d.Obituary,
			FuneralHome:         d.FuneralHome,
			ViewingDetails:      d.ViewingDetails,
			ProcessionDetails:   d.ProcessionDetails,
			ServiceDetails:      d.ServiceDetails,
			WakeDetails:         d.WakeDetails,
			FinalRestingPlace:   d.FinalRestingPlace,
			Eulogy:              d.Eulogy,
			OrderOfService:      d.OrderOfService,
			FamilyMessage:       d.FamilyMessage,
			MemorialVideo:       d.MemorialVideo,
			Tributes:            d.Tributes,
			MessageFromHonouree: d.MessageFromHonouree,
		}
	}

	inserts := []struct {
		table    string
		idColumn string
		columns  []patchColumn
	}{
		{"general_knowledge", "knowledge_id", generalKnowledgeColumns(gk)},
		{"memorial_details", "details_id", memorialDetailsColumns(md)},
	}

	for _, ins := range inserts {
		query, args, buildErr := buildSingletonInsert(ins.table, ins.idColumn, p.ids.Generate(), agg.PageID, ins.columns)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "pageRepository.insertSingletons").
				Str("page_id", agg.PageID).
				Str("table", ins.table).
				Msg("failed to build singleton insert")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "pageRepository.insertSingletons").
				Str("page_id", agg.PageID).
				Str("table", ins.table).
				Msg("failed to insert singleton row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	return nil
}

// upsertSingleton applies a non-empty patch to a singleton table: an UPDATE
// carrying only the patched columns, falling back to an INSERT when the row
// does not exist yet.
func (p *pageRepository) upsertSingleton(ctx context.Context, tx *sql.Tx, table, idColumn, pageID string, columns []patchColumn) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSingletonUpdate(table, pageID, columns)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.upsertSingleton").
			Str("page_id", pageID).
			Str("table", table).
			Msg("failed to build singleton update")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := tx.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "pageRepository.upsertSingleton").
			Str("page_id", pageID).
			Str("table", table).
			Msg("failed to execute singleton update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, raErr := result.RowsAffected()
	if raErr != nil || affected > 0 {
		return nil
	}

	// row missing: fall back to insert
	query, args, err = buildSingletonInsert(table, idColumn, p.ids.Generate(), pageID, columns)
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.upsertSingleton").
			Str("page_id", pageID).
			Str("table", table).
			Msg("failed to build singleton insert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr = tx.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "pageRepository.upsertSingleton").
			Str("page_id", pageID).
			Str("table", table).
			Msg("failed to insert singleton row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	return nil
}

// insertCollections writes every child collection row carried by agg using
// one prepared statement per table. Generated IDs, page_id, and submission
// positions are written back into agg so the caller sees the stored rows.
func (p *pageRepository) insertCollections(ctx context.Context, tx *sql.Tx, agg *models.PageAggregate) error {
	log := logger.FromContext(ctx)

	if len(agg.MediaItems) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertMediaItem)
		if err != nil {
			return p.prepareFailed(log, agg.PageID, "media_items", err)
		}
		for idx := range agg.MediaItems {
			item := &agg.MediaItems[idx]
			item.MediaID = p.ids.Generate()
			item.PageID = agg.PageID
			item.Position = idx
			if _, err = stmt.ExecContext(ctx, item.MediaID, item.PageID, item.Type, item.URL,
				item.DateTaken, item.Location, item.Description, item.Category, item.Position); err != nil {
				stmt.Close()
				return p.insertFailed(log, agg.PageID, "media_items", idx, err)
			}
		}
		stmt.Close()
	}

	if len(agg.Events) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertEvent)
		if err != nil {
			return p.prepareFailed(log, agg.PageID, "events", err)
		}
		for idx := range agg.Events {
			event := &agg.Events[idx]
			event.EventID = p.ids.Generate()
			event.PageID = agg.PageID
			event.Position = idx
			if _, err = stmt.ExecContext(ctx, event.EventID, event.PageID, event.Name, event.Date,
				event.Time, event.RSVPBy, event.Location, event.GoogleMapsCode,
				event.ExternalURL, event.Message, event.Position); err != nil {
				stmt.Close()
				return p.insertFailed(log, agg.PageID, "events", idx, err)
			}
		}
		stmt.Close()
	}

	if len(agg.Relationships) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertRelationship)
		if err != nil {
			return p.prepareFailed(log, agg.PageID, "relationships", err)
		}
		for idx := range agg.Relationships {
			rel := &agg.Relationships[idx]
			rel.RelationshipID = p.ids.Generate()
			rel.PageID = agg.PageID
			rel.Position = idx
			if _, err = stmt.ExecContext(ctx, rel.RelationshipID, rel.PageID, rel.Type,
				rel.IsCustomType, rel.Name, rel.Position); err != nil {
				stmt.Close()
				return p.insertFailed(log, agg.PageID, "relationships", idx, err)
			}
		}
		stmt.Close()
	}

	if len(agg.Insights) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertInsight)
		if err != nil {
			return p.prepareFailed(log, agg.PageID, "insights", err)
		}
		for idx := range agg.Insights {
			insight := &agg.Insights[idx]
			insight.InsightID = p.ids.Generate()
			insight.PageID = agg.PageID
			insight.Position = idx
			if _, err = stmt.ExecContext(ctx, insight.InsightID, insight.PageID,
				insight.Message, insight.Position); err != nil {
				stmt.Close()
				return p.insertFailed(log, agg.PageID, "insights", idx, err)
			}
		}
		stmt.Close()
	}

	if len(agg.Quotes) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertQuote)
		if err != nil {
			return p.prepareFailed(log, agg.PageID, "quotes", err)
		}
		for idx := range agg.Quotes {
			quote := &agg.Quotes[idx]
			quote.QuoteID = p.ids.Generate()
			quote.PageID = agg.PageID
			quote.Position = idx
			if _, err = stmt.ExecContext(ctx, quote.QuoteID, quote.PageID, quote.Text,
				quote.Author, quote.Position); err != nil {
				stmt.Close()
				return p.insertFailed(log, agg.PageID, "quotes", idx, err)
			}
		}
		stmt.Close()
	}

	return nil
}

func (p *pageRepository) prepareFailed(log *logger.Logger, pageID, table string, err error) error {
	log.Err(err).
		Str("func", "pageRepository.insertCollections").
		Str("page_id", pageID).
		Str("table", table).
		Msg("failed to prepare statement")
	return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
}

func (p *pageRepository) insertFailed(log *logger.Logger, pageID, table string, idx int, err error) error {
	log.Err(err).
		Str("func", "pageRepository.insertCollections").
		Str("page_id", pageID).
		Str("table", table).
		Int("iteration", idx+1).
		Msg("failed to execute prepared statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (p *pageRepository) loadGeneralKnowledge(ctx context.Context, pageID string) (*models.GeneralKnowledge, error) {
	log := logger.FromContext(ctx)

	var gk models.GeneralKnowledge
	err := p.DB.QueryRowContext(ctx, getGeneralKnowledge, pageID).Scan(
		&gk.KnowledgeID,
		&gk.PageID,
		&gk.Personality,
		&gk.Values,
		&gk.Beliefs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.loadGeneralKnowledge").
			Str("page_id", pageID).
			Msg("failed to query general knowledge")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &gk, nil
}

func (p *pageRepository) loadMemorialDetails(ctx context.Context, pageID string) (*models.MemorialDetails, error) {
	log := logger.FromContext(ctx)

	var md models.MemorialDetails
	err := p.DB.QueryRowContext(ctx, getMemorialDetails, pageID).Scan(
		&md.DetailsID,
		&md.PageID,
		&md.FuneralWishes,
		&md.Obituary,
		&md.FuneralHome,
		&md.ViewingDetails,
		&md.ProcessionDetails,
		&md.ServiceDetails,
		&md.WakeDetails,
		&md.FinalRestingPlace,
		&md.Eulogy,
		&md.OrderOfService,
		&md.FamilyMessage,
		&md.MemorialVideo,
		&md.Tributes,
		&md.MessageFromHonouree,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "pageRepository.loadMemorialDetails").
			Str("page_id", pageID).
			Msg("failed to query memorial details")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &md, nil
}

func (p *pageRepository) loadMediaItems(ctx context.Context, pageID string) ([]models.MediaItem, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getMediaItems, pageID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "pageRepository.loadMediaItems").
			Str("page_id", pageID).
			Msg("failed to query media items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.MediaItem, 0, 16)

	for rows.Next() {
		var item models.MediaItem
		scanErr := rows.Scan(
			&item.MediaID,
			&item.PageID,
			&item.Type,
			&item.URL,
			&item.DateTaken,
			&item.Location,
			&item.Description,
			&item.Category,
			&item.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pageRepository.loadMediaItems").
				Str("page_id", pageID).
				Msg("failed to scan media item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pageRepository.loadMediaItems").
			Str("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (p *pageRepository) loadEvents(ctx context.Context, pageID string) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getEvents, pageID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "pageRepository.loadEvents").
			Str("page_id", pageID).
			Msg("failed to query events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	events := make([]models.Event, 0, 8)

	for rows.Next() {
		var event models.Event
		scanErr := rows.Scan(
			&event.EventID,
			&event.PageID,
			&event.Name,
			&event.Date,
			&event.Time,
			&event.RSVPBy,
			&event.Location,
			&event.GoogleMapsCode,
			&event.ExternalURL,
			&event.Message,
			&event.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pageRepository.loadEvents").
				Str("page_id", pageID).
				Msg("failed to scan event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pageRepository.loadEvents").
			Str("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return events, nil
}

func (p *pageRepository) loadRelationships(ctx context.Context, pageID string) ([]models.Relationship, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getRelationships, pageID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "pageRepository.loadRelationships").
			Str("page_id", pageID).
			Msg("failed to query relationships")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	relationships := make([]models.Relationship, 0, 8)

	for rows.Next() {
		var rel models.Relationship
		scanErr := rows.Scan(
			&rel.RelationshipID,
			&rel.PageID,
			&rel.Type,
			&rel.IsCustomType,
			&rel.Name,
			&rel.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pageRepository.loadRelationships").
				Str("page_id", pageID).
				Msg("failed to scan relationship row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		relationships = append(relationships, rel)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pageRepository.loadRelationships").
			Str("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return relationships, nil
}

func (p *pageRepository) loadInsights(ctx context.Context, pageID string) ([]models.Insight, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getInsights, pageID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "pageRepository.loadInsights").
			Str("page_id", pageID).
			Msg("failed to query insights")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	insights := make([]models.Insight, 0, 8)

	for rows.Next() {
		var insight models.Insight
		scanErr := rows.Scan(
			&insight.InsightID,
			&insight.PageID,
			&insight.Message,
			&insight.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pageRepository.loadInsights").
				Str("page_id", pageID).
				Msg("failed to scan insight row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		insights = append(insights, insight)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pageRepository.loadInsights").
			Str("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return insights, nil
}

func (p *pageRepository) loadQuotes(ctx context.Context, pageID string) ([]models.Quote, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getQuotes, pageID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "pageRepository.loadQuotes").
			Str("page_id", pageID).
			Msg("failed to query quotes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	quotes := make([]models.Quote, 0, 8)

	for rows.Next() {
		var quote models.Quote
		scanErr := rows.Scan(
			&quote.QuoteID,
			&quote.PageID,
			&quote.Text,
			&quote.Author,
			&quote.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pageRepository.loadQuotes").
				Str("page_id", pageID).
				Msg("failed to scan quote row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		quotes = append(quotes, quote)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "pageRepository.loadQuotes").
			Str("page_id", pageID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return quotes, nil
}
