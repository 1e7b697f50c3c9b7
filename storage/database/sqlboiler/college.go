package boiledrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"github.com/volatiletech/sqlboiler/v4/queries"
	"github.com/volatiletech/strmangle"

	"github.com/edlane/campusdir/core"
	"github.com/edlane/campusdir/core/catalog"
	"github.com/edlane/campusdir/core/college"
)

// entityColumns maps predicate fields to entity table columns.
var entityColumns = map[college.EntityField]string{
	college.FieldGender:    "gender_accepted",
	college.FieldStateID:   "state_id",
	college.FieldCityID:    "city_id",
	college.FieldTypeCode:  "type_code",
	college.FieldOwnership: "ownership_type_code",
}

type collegeRepository struct {
	exec core.DBExecutor
}

var _ college.Repository = (*collegeRepository)(nil) // interface compliance check

func NewCollegeRepository(exec core.DBExecutor) *collegeRepository {
	return &collegeRepository{exec: exec}
}

func (repo collegeRepository) getExec(svcExec []core.DBExecutor) core.DBExecutor {
	if len(svcExec) > 0 {
		return svcExec[0]
	}
	return repo.exec
}

// trapNoRowsErr maps psql "no rows" err to college.ErrNotFound
func (repo collegeRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return college.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

type entityRow struct {
	ID              int            `boil:"id"`
	Name            string         `boil:"name"`
	Slug            string         `boil:"slug"`
	BannerImage     null.String    `boil:"banner_image"`
	Logo            null.String    `boil:"logo"`
	TypeCode        string         `boil:"type_code"`
	OwnershipCode   string         `boil:"ownership_type_code"`
	EstablishedYear int            `boil:"established_year"`
	Area            null.Float64   `boil:"area"`
	GenderAccepted  string         `boil:"gender_accepted"`
	Address         null.String    `boil:"address"`
	CityID          int            `boil:"city_id"`
	CityName        string         `boil:"city_name"`
	StateID         int            `boil:"state_id"`
	StateName       string         `boil:"state_name"`
	Pincode         null.String    `boil:"pincode"`
	Country         string         `boil:"country"`
	Website         string         `boil:"website"`
	Instagram       null.String    `boil:"instagram"`
	Facebook        null.String    `boil:"facebook"`
	Twitter         null.String    `boil:"twitter"`
	Linkedin        null.String    `boil:"linkedin"`
	Phone           pq.StringArray `boil:"phone"`
	Email           pq.StringArray `boil:"email"`
	Brochure        null.String    `boil:"brochure"`
	HostelBrochure  null.String    `boil:"hostel_brochure"`
	NaacGrade       null.String    `boil:"naac_grade"`
	NirfRank        null.Int       `boil:"nirf_rank"`
	Info            null.String    `boil:"info"`
	Tags            pq.StringArray `boil:"tags"`
	CreatedAt       time.Time      `boil:"created_at"`
	UpdatedAt       time.Time      `boil:"updated_at"`
}

const entitySelect = `SELECT e.id, e.name, e.slug, e.banner_image, e.logo, e.type_code, e.ownership_type_code,
	e.established_year, e.area, e.gender_accepted, e.address, e.city_id, c.name AS city_name,
	e.state_id, s.name AS state_name, e.pincode, e.country, e.website, e.instagram, e.facebook,
	e.twitter, e.linkedin, e.phone, e.email, e.brochure, e.hostel_brochure, e.naac_grade,
	e.nirf_rank, e.info, e.tags, e.created_at, e.updated_at
FROM entity e
JOIN city_lookup c ON c.id = e.city_id
JOIN state_lookup s ON s.id = e.state_id`

// renderPredicate turns a directory predicate into a WHERE fragment and its
// args. The clause kinds are a closed set; anything else is a programming
// error and panics.
func renderPredicate(pred college.Predicate, nextArg int) (string, []interface{}) {
	if pred.IsEmpty() {
		return "", nil
	}

	var conds []string
	var args []interface{}

	addIn := func(expr string, vals []interface{}) {
		ph := strmangle.Placeholders(true, len(vals), nextArg, 1)
		conds = append(conds, fmt.Sprintf(expr, ph))
		args = append(args, vals...)
		nextArg += len(vals)
	}

	for _, clause := range pred.Clauses {
		switch cl := clause.(type) {
		case college.StringIn:
			addIn("e."+entityColumns[cl.Field]+" IN (%s)", strArgs(cl.Values))

		case college.IntIn:
			addIn("e."+entityColumns[cl.Field]+" IN (%s)", intArgs(cl.Values))

		case college.HasCourseLookup:
			addIn(`EXISTS (SELECT 1 FROM course co WHERE co.entity_id = e.id AND co.course_lookup_id IN (%s))`,
				intArgs(cl.IDs))

		case college.HasCourseMatching:
			var sub []string
			var subArgs []interface{}
			for _, dim := range []struct {
				col  string
				vals []string
			}{
				{"type_code", cl.Types},
				{"category_code", cl.Categories},
				{"course_code", cl.Codes},
			} {
				if len(dim.vals) == 0 {
					continue
				}
				ph := strmangle.Placeholders(true, len(dim.vals), nextArg, 1)
				sub = append(sub, fmt.Sprintf("cl.%s IN (%s)", dim.col, ph))
				subArgs = append(subArgs, strArgs(dim.vals)...)
				nextArg += len(dim.vals)
			}
			conds = append(conds, fmt.Sprintf(
				`EXISTS (SELECT 1 FROM course co JOIN course_lookup cl ON cl.id = co.course_lookup_id WHERE co.entity_id = e.id AND %s)`,
				strings.Join(sub, " AND ")))
			args = append(args, subArgs...)

		default:
			panic(fmt.Sprintf("unknown predicate clause %T", clause))
		}
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// collegeListStatement builds the entity list query for a predicate. Rows
// come back ordered by primary key so result sets stay deterministic.
func collegeListStatement(pred college.Predicate, limit int) (string, []interface{}) {
	where, args := renderPredicate(pred, 1)
	query := entitySelect + where + fmt.Sprintf(" ORDER BY e.id LIMIT $%d", len(args)+1)
	return query, append(args, limit)
}

func (repo collegeRepository) QueryColleges(ctx context.Context, pred college.Predicate, limit int, exec ...core.DBExecutor) ([]college.College, error) {
	exe := repo.getExec(exec)

	query, args := collegeListStatement(pred, limit)

	var rows []entityRow
	if err := queries.Raw(query, args...).Bind(ctx, exe, &rows); err != nil {
		return nil, errors.Wrap(err, "querying colleges")
	}

	cols := make([]college.College, 0, len(rows))
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		cols = append(cols, row.toDomain())
		ids = append(ids, row.ID)
	}

	if err := repo.attachCourseSummaries(ctx, exe, cols, ids); err != nil {
		return nil, err
	}
	return cols, nil
}

func (repo collegeRepository) GetCollegeBySlug(ctx context.Context, slug string, exec ...core.DBExecutor) (college.College, error) {
	exe := repo.getExec(exec)

	var row entityRow
	if err := queries.Raw(entitySelect+" WHERE e.slug = $1", slug).Bind(ctx, exe, &row); err != nil {
		return college.College{}, repo.trapNoRowsErr(err, "finding college by slug")
	}

	cols := []college.College{row.toDomain()}
	if err := repo.attachCourseSummaries(ctx, exe, cols, []int{row.ID}); err != nil {
		return college.College{}, err
	}
	return cols[0], nil
}

func (row entityRow) toDomain() college.College {
	return college.College{
		ID:              row.ID,
		Name:            row.Name,
		Slug:            row.Slug,
		BannerImage:     row.BannerImage,
		Logo:            row.Logo,
		TypeCode:        row.TypeCode,
		OwnershipCode:   row.OwnershipCode,
		EstablishedYear: row.EstablishedYear,
		Area:            row.Area,
		GenderAccepted:  row.GenderAccepted,
		Address:         row.Address,
		City:            college.CitySummary{ID: row.CityID, Name: row.CityName, StateID: row.StateID},
		State:           college.StateSummary{ID: row.StateID, Name: row.StateName},
		Pincode:         row.Pincode,
		Country:         row.Country,
		Website:         row.Website,
		Instagram:       row.Instagram,
		Facebook:        row.Facebook,
		Twitter:         row.Twitter,
		Linkedin:        row.Linkedin,
		Phone:           row.Phone,
		Email:           row.Email,
		Brochure:        row.Brochure,
		HostelBrochure:  row.HostelBrochure,
		NaacGrade:       row.NaacGrade,
		NirfRank:        row.NirfRank,
		Info:            row.Info,
		Tags:            row.Tags,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

type courseSummaryRow struct {
	ID           int         `boil:"id"`
	EntityID     int         `boil:"entity_id"`
	Info         null.String `boil:"info"`
	LookupID     int         `boil:"lookup_id"`
	Code         string      `boil:"code"`
	CourseCode   string      `boil:"course_code"`
	CategoryCode string      `boil:"category_code"`
	TypeCode     string      `boil:"type_code"`
}

// attachCourseSummaries loads the course summaries for the given entity ids
// in one query and attaches them to the matching colleges.
func (repo collegeRepository) attachCourseSummaries(ctx context.Context, exe core.DBExecutor, cols []college.College, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT co.id, co.entity_id, co.info, cl.id AS lookup_id, cl.code, cl.course_code, cl.category_code, cl.type_code
FROM course co
JOIN course_lookup cl ON cl.id = co.course_lookup_id
WHERE co.entity_id IN (%s)
ORDER BY co.id`, strmangle.Placeholders(true, len(ids), 1, 1))

	var rows []courseSummaryRow
	if err := queries.Raw(query, intArgs(ids)...).Bind(ctx, exe, &rows); err != nil {
		return errors.Wrap(err, "querying course summaries")
	}

	byEntity := make(map[int][]college.CourseSummary, len(cols))
	for _, row := range rows {
		byEntity[row.EntityID] = append(byEntity[row.EntityID], college.CourseSummary{
			ID:   row.ID,
			Info: row.Info,
			Lookup: catalog.CourseLookup{
				ID:           row.LookupID,
				Name:         catalog.CourseDisplayName(row.CourseCode, row.Code),
				CourseCode:   row.CourseCode,
				CategoryCode: row.CategoryCode,
				TypeCode:     row.TypeCode,
			},
		})
	}
	for i := range cols {
		cols[i].Courses = byEntity[cols[i].ID]
	}
	return nil
}

type courseRow struct {
	ID            int            `boil:"id"`
	Code          string         `boil:"code"`
	CourseCode    string         `boil:"course_code"`
	CategoryCode  string         `boil:"category_code"`
	TypeCode      string         `boil:"type_code"`
	DurationYears int            `boil:"duration_years"`
	Eligibility   pq.StringArray `boil:"eligibility"`
	EntranceExams pq.StringArray `boil:"entrance_exams"`
	TotalFee      null.Int       `boil:"total_fee"`
	MinFee        null.Int       `boil:"min_fee"`
	MaxFee        null.Int       `boil:"max_fee"`
	Info          null.String    `boil:"info"`
}

const courseSelect = `SELECT co.id, cl.code, cl.course_code, cl.category_code, cl.type_code,
	co.duration_years, co.eligibility, co.entrance_exams, co.total_fee, co.min_fee, co.max_fee, co.info
FROM course co
JOIN course_lookup cl ON cl.id = co.course_lookup_id
JOIN entity e ON e.id = co.entity_id`

func (row courseRow) toDomain() college.Course {
	return college.Course{
		ID:            row.ID,
		Name:          catalog.CourseDisplayName(row.CourseCode, row.Code),
		Code:          row.CourseCode,
		Category:      row.CategoryCode,
		Type:          row.TypeCode,
		DurationYears: row.DurationYears,
		Eligibility:   row.Eligibility,
		EntranceExams: row.EntranceExams,
		TotalFee:      row.TotalFee,
		MinFee:        row.MinFee,
		MaxFee:        row.MaxFee,
		Info:          row.Info,
	}
}

func (repo collegeRepository) QueryCourses(ctx context.Context, slug string, exec ...core.DBExecutor) ([]college.Course, error) {
	exe := repo.getExec(exec)

	var rows []courseRow
	err := queries.Raw(courseSelect+" WHERE e.slug = $1 ORDER BY co.id", slug).Bind(ctx, exe, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}

	courses := make([]college.Course, 0, len(rows))
	for _, row := range rows {
		crs := row.toDomain()
		if crs.Fees, err = repo.queryFees(ctx, exe, crs.ID); err != nil {
			return nil, err
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func (repo collegeRepository) GetCourse(ctx context.Context, slug string, courseID int, exec ...core.DBExecutor) (college.Course, error) {
	exe := repo.getExec(exec)

	var row courseRow
	err := queries.Raw(courseSelect+" WHERE e.slug = $1 AND co.id = $2", slug, courseID).Bind(ctx, exe, &row)
	if err != nil {
		return college.Course{}, repo.trapNoRowsErr(err, "finding course")
	}

	crs := row.toDomain()
	if crs.Fees, err = repo.queryFees(ctx, exe, crs.ID); err != nil {
		return college.Course{}, err
	}
	return crs, nil
}

type courseFeeRow struct {
	Year   int `boil:"year"`
	Amount int `boil:"amount"`
}

func (repo collegeRepository) queryFees(ctx context.Context, exe core.DBExecutor, courseID int) ([]college.CourseFee, error) {
	var rows []courseFeeRow
	err := queries.Raw(`SELECT year, amount FROM course_fee WHERE course_id = $1 ORDER BY year`, courseID).Bind(ctx, exe, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying course fees")
	}

	fees := make([]college.CourseFee, 0, len(rows))
	for _, row := range rows {
		fees = append(fees, college.CourseFee{Year: row.Year, Amount: row.Amount})
	}
	return fees, nil
}

type galleryRow struct {
	Src     string      `boil:"src"`
	Caption null.String `boil:"caption"`
}

func (repo collegeRepository) QueryGallery(ctx context.Context, slug string, exec ...core.DBExecutor) ([]college.GalleryImage, error) {
	var rows []galleryRow
	err := queries.Raw(`SELECT src, caption FROM gallery WHERE entity_slug = $1 ORDER BY src`, slug).
		Bind(ctx, repo.getExec(exec), &rows)
	if err != nil {
		return nil, errors.Wrap(err, "querying gallery")
	}

	images := make([]college.GalleryImage, 0, len(rows))
	for _, row := range rows {
		images = append(images, college.GalleryImage{Src: row.Src, Caption: row.Caption.String})
	}
	return images, nil
}

func strArgs(vals []string) []interface{} {
	args := make([]interface{}, 0, len(vals))
	for _, v := range vals {
		args = append(args, v)
	}
	return args
}

func intArgs(vals []int) []interface{} {
	args := make([]interface{}, 0, len(vals))
	for _, v := range vals {
		args = append(args, v)
	}
	return args
}
