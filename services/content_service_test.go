package services

import (
	"encoding/json"
	"errors"
	"testing"

	"zanaat.studio/content"
	"zanaat.studio/models"
	"zanaat.studio/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSnapshotRepo bellek içi ISnapshotRepository; yazılan anahtarların
// sırasını da kaydeder.
type fakeSnapshotRepo struct {
	data    map[string][]byte
	setKeys []string
	delKeys []string
	setErr  error
	delErr  error
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{data: make(map[string][]byte)}
}

func (r *fakeSnapshotRepo) Get(key string) ([]byte, error) {
	raw, ok := r.data[key]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return raw, nil
}

func (r *fakeSnapshotRepo) Set(key string, value []byte) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.setKeys = append(r.setKeys, key)
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r *fakeSnapshotRepo) Delete(key string) error {
	if r.delErr != nil {
		return r.delErr
	}
	r.delKeys = append(r.delKeys, key)
	delete(r.data, key)
	return nil
}

var _ repositories.ISnapshotRepository = (*fakeSnapshotRepo)(nil)

func newTestContentService(repo *fakeSnapshotRepo) IContentService {
	svc := NewContentServiceWithRepo(repo)
	svc.Initialize()
	return svc
}

func TestContentService_InitializeFromSeed(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	assert.Equal(t, content.CompanyInfo, svc.Company())
	assert.Equal(t, content.TeamMembers, svc.TeamMembers())
	assert.Equal(t, content.PortfolioData, svc.PortfolioData())
}

func TestContentService_InitializePrefersSnapshot(t *testing.T) {
	repo := newFakeSnapshotRepo()
	saved := models.CompanyInfo{Name: "Kayıtlı Stüdyo", Slogan: "kayıtlı slogan"}
	raw, err := json.Marshal(saved)
	require.NoError(t, err)
	repo.data[models.SnapshotKeyCompany] = raw

	svc := newTestContentService(repo)

	assert.Equal(t, saved, svc.Company())
	// Diğer varlıkların kaydı yok; seed geçerli kalmalı.
	assert.Equal(t, content.TeamMembers, svc.TeamMembers())
}

func TestContentService_InitializeCorruptSnapshotFallsBackToSeed(t *testing.T) {
	repo := newFakeSnapshotRepo()
	repo.data[models.SnapshotKeyTeam] = []byte("{bozuk json")

	svc := newTestContentService(repo)

	assert.Equal(t, content.TeamMembers, svc.TeamMembers())
}

func TestContentService_UpdateCompanyPersistsOnlyOwnKey(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)

	info := svc.Company()
	info.Name = "Yeni İsim"
	require.NoError(t, svc.UpdateCompanyInfo(info))

	assert.Equal(t, []string{models.SnapshotKeyCompany}, repo.setKeys)

	var saved models.CompanyInfo
	require.NoError(t, json.Unmarshal(repo.data[models.SnapshotKeyCompany], &saved))
	assert.Equal(t, "Yeni İsim", saved.Name)
}

func TestContentService_PersistenceIdempotence(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)

	require.NoError(t, svc.UpdateCompanyInfo(svc.Company()))
	first := append([]byte(nil), repo.data[models.SnapshotKeyCompany]...)

	require.NoError(t, svc.UpdateCompanyInfo(svc.Company()))
	assert.Equal(t, first, repo.data[models.SnapshotKeyCompany], "aynı değerle yazım bayt bayt aynı kalmalı")
	// Diğer varlıkların anahtarlarına dokunulmamalı.
	assert.NotContains(t, repo.data, models.SnapshotKeyTeam)
	assert.NotContains(t, repo.data, models.SnapshotKeyPortfolio)
}

func TestContentService_AddTeamMemberAppends(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)
	before := len(svc.TeamMembers())

	member := models.TeamMember{ID: "yeni-1", Name: "Yeni Üye", Role: "Editör", Tags: []string{"Kurgu"}}
	require.NoError(t, svc.AddTeamMember(member))

	team := svc.TeamMembers()
	require.Len(t, team, before+1)
	assert.Equal(t, member, team[len(team)-1], "yeni üye listenin sonunda olmalı")
	assert.Equal(t, []string{models.SnapshotKeyTeam}, repo.setKeys)
}

func TestContentService_UpdateTeamMemberPatchesMatching(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)
	target := svc.TeamMembers()[0]

	newRole := "Sanat Yönetmeni"
	require.NoError(t, svc.UpdateTeamMember(target.ID, models.TeamMemberPatch{Role: &newRole}))

	got := svc.TeamMembers()[0]
	assert.Equal(t, newRole, got.Role)
	assert.Equal(t, target.Name, got.Name, "patch'te olmayan alanlar korunmalı")
}

func TestContentService_UnknownIDsAreNoOps(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)
	team := svc.TeamMembers()
	portfolio := svc.PortfolioData()

	name := "x"
	require.NoError(t, svc.UpdateTeamMember("yok-boyle-biri", models.TeamMemberPatch{Name: &name}))
	require.NoError(t, svc.DeleteTeamMember("yok-boyle-biri"))
	require.NoError(t, svc.AddPortfolioItem(models.ServiceType("bilinmeyen"), models.PortfolioItem{ID: "p1"}))
	require.NoError(t, svc.UpdatePortfolioItem(models.ServiceTypeBranding, "yok-boyle-is", models.PortfolioItemPatch{Title: &name}))
	require.NoError(t, svc.DeletePortfolioItem(models.ServiceTypeBranding, "yok-boyle-is"))

	assert.Equal(t, team, svc.TeamMembers())
	assert.Equal(t, portfolio, svc.PortfolioData())
	assert.Empty(t, repo.setKeys, "no-op mutasyon kalıcılaştırma yapmamalı")
}

func TestContentService_AddPortfolioItemPrepends(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)

	item := models.PortfolioItem{ID: "yeni-is", Title: "Yeni İş", Tags: []string{}}
	require.NoError(t, svc.AddPortfolioItem(models.ServiceTypeBranding, item))

	cat, ok := svc.Category(models.ServiceTypeBranding)
	require.True(t, ok)
	require.NotEmpty(t, cat.Items)
	assert.Equal(t, "yeni-is", cat.Items[0].ID, "yeni iş listenin başında olmalı")
	assert.Equal(t, []string{models.SnapshotKeyPortfolio}, repo.setKeys)
}

func TestContentService_DeletePortfolioItem(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	cat, ok := svc.Category(models.ServiceTypeBranding)
	require.True(t, ok)
	require.NotEmpty(t, cat.Items)
	victim := cat.Items[0].ID

	require.NoError(t, svc.DeletePortfolioItem(models.ServiceTypeBranding, victim))

	after, _ := svc.Category(models.ServiceTypeBranding)
	assert.Len(t, after.Items, len(cat.Items)-1)
	for _, item := range after.Items {
		assert.NotEqual(t, victim, item.ID)
	}
}

func TestContentService_CategoryUnknownID(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	_, ok := svc.Category(models.ServiceType("bilinmeyen"))
	assert.False(t, ok)
}

func TestContentService_ReadsReturnCopies(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	team := svc.TeamMembers()
	team[0].Name = "Dışarıdan Değiştirilmiş"

	assert.Equal(t, content.TeamMembers[0].Name, svc.TeamMembers()[0].Name)
}

func TestContentService_PersistFailureSurfaces(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)
	repo.setErr = errors.New("db kapalı")

	err := svc.UpdateCompanyInfo(models.CompanyInfo{Name: "X"})
	assert.ErrorIs(t, err, ErrContentPersistFailed)
}

func TestContentService_ResetRequiresConfirmation(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)

	info := svc.Company()
	info.Name = "Değişmiş"
	require.NoError(t, svc.UpdateCompanyInfo(info))

	ran, err := svc.ResetToDefault(ConfirmFunc(func(prompt string) bool {
		assert.Equal(t, ResetConfirmPrompt, prompt)
		return false
	}))
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, "Değişmiş", svc.Company().Name, "onaysız sıfırlama durumu değiştirmemeli")
	assert.Empty(t, repo.delKeys)

	ran, err = svc.ResetToDefault(nil)
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestContentService_ResetRestoresSeedAndClearsStore(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)

	info := svc.Company()
	info.Name = "Değişmiş"
	require.NoError(t, svc.UpdateCompanyInfo(info))
	require.NoError(t, svc.AddTeamMember(models.TeamMember{ID: "yeni-1", Name: "Yeni"}))
	require.NoError(t, svc.AddPortfolioItem(models.ServiceTypeVideo, models.PortfolioItem{ID: "yeni-is"}))

	ran, err := svc.ResetToDefault(ConfirmFunc(func(string) bool { return true }))
	require.NoError(t, err)
	assert.True(t, ran)

	assert.Equal(t, content.CompanyInfo, svc.Company())
	assert.Equal(t, content.TeamMembers, svc.TeamMembers())
	assert.Equal(t, content.PortfolioData, svc.PortfolioData())

	assert.ElementsMatch(t,
		[]string{models.SnapshotKeyCompany, models.SnapshotKeyTeam, models.SnapshotKeyPortfolio},
		repo.delKeys)
	assert.NotContains(t, repo.data, models.SnapshotKeyCompany)
	assert.NotContains(t, repo.data, models.SnapshotKeyTeam)
	assert.NotContains(t, repo.data, models.SnapshotKeyPortfolio)
}

func TestContentService_ResetDeleteFailure(t *testing.T) {
	repo := newFakeSnapshotRepo()
	svc := newTestContentService(repo)
	repo.delErr = errors.New("db kapalı")

	ran, err := svc.ResetToDefault(ConfirmFunc(func(string) bool { return true }))
	assert.True(t, ran)
	assert.ErrorIs(t, err, ErrContentResetFailed)
	// Bellek içi durum yine de seed'e dönmüş olmalı.
	assert.Equal(t, content.CompanyInfo, svc.Company())
}

func TestContentService_GenerateConfigFileReflectsState(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	info := svc.Company()
	info.Name = "Dışa Aktarılan Stüdyo"
	require.NoError(t, svc.UpdateCompanyInfo(info))

	src := svc.GenerateConfigFile()
	assert.Contains(t, src, "package content")
	assert.Contains(t, src, `"Dışa Aktarılan Stüdyo"`)
}

func TestContentService_FullContext(t *testing.T) {
	svc := newTestContentService(newFakeSnapshotRepo())

	got := svc.FullContext()
	assert.Contains(t, got, "Company Name: "+content.CompanyInfo.Name)
	assert.Contains(t, got, "Services:")
}
