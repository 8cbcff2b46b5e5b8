package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"webafan-portfolio/app/server/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCategories(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT DISTINCT "skill_category" FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"skill_category"}).
			AddRow("Backend").
			AddRow("Database").
			AddRow("Frontend"))

	c, rec := newJSONContext(http.MethodGet, "/api/skills/categories", "")
	require.NoError(t, a.SkillCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, []string{"Backend", "Database", "Frontend"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillListByCategory(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "skill_name", "skill_category"}).
			AddRow(1, "Go", "Backend").
			AddRow(2, "Java / Spring Boot", "Backend"))

	c, rec := newJSONContext(http.MethodGet, "/api/skills/category/Backend", "")
	c.SetParamNames("category")
	c.SetParamValues("Backend")
	require.NoError(t, a.SkillListByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].SkillName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillListByProfile(t *testing.T) {
	a, mock, _ := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "skill_name", "proficiency_level", "profile_id"}).
			AddRow(3, "PostgreSQL", 90, 1).
			AddRow(2, "Go", 80, 1))

	c, rec := newJSONContext(http.MethodGet, "/api/skills/profile/1", "")
	c.SetParamNames("profileId")
	c.SetParamValues("1")
	require.NoError(t, a.SkillListByProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var skills []models.Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &skills))
	require.Len(t, skills, 2)
	assert.Equal(t, 90, skills[0].ProficiencyLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillListByProfileBadID(t *testing.T) {
	a, _, _ := newTestApp(t)

	c, rec := newJSONContext(http.MethodGet, "/api/skills/profile/abc", "")
	c.SetParamNames("profileId")
	c.SetParamValues("abc")
	require.NoError(t, a.SkillListByProfile(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
