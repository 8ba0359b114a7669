package contentfile

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"zanaat.studio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCompany() models.CompanyInfo {
	return models.CompanyInfo{
		Name:        "Zanaat Kreatif",
		Slogan:      "Tutkuyla tasarlar, sizin için üretiriz",
		Phones:      []string{"0532 417 28 96", "0212 346 71 05"},
		Description: "Görsel iletişimi merkezine alan bir stüdyo.",
		Locations:   []string{"İstanbul · Karaköy"},
		Logo:        models.MediaRef{Kind: models.MediaKindRemote, Value: "https://example.com/logo.png"},
	}
}

func sampleTeam() []models.TeamMember {
	return []models.TeamMember{
		{
			ID:    "t1",
			Name:  "Kurucu Ortak A",
			Role:  "Yönetmen",
			Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://example.com/a.jpg"},
			Tags:  []string{"Yönetmen", "Kurucu"},
		},
		{
			ID:   "t2",
			Name: "Kurucu Ortak B",
			Role: "Müzik Prodüktörü",
			Tags: []string{},
		},
	}
}

func samplePortfolio() []models.ServiceCategory {
	return []models.ServiceCategory{
		{
			ID:   models.ServiceTypeBranding,
			Name: "Marka Tasarımı",
			Icon: "palette",
			Items: []models.PortfolioItem{
				{
					ID:          "b1",
					Title:       "Kurumsal Kimlik",
					Description: "Logo ve kimlik çalışması",
					Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://example.com/b1.jpg"},
					Gallery: []models.MediaRef{
						{Kind: models.MediaKindRemote, Value: "https://example.com/g1.jpg"},
						{Kind: models.MediaKindEmbedded, Value: "data:image/png;base64,aGVsbG8="},
					},
					Tags: []string{"Logo"},
				},
			},
		},
		{
			ID:    models.ServiceTypeVideo,
			Name:  "Video Prodüksiyon",
			Icon:  "videocam",
			Items: []models.PortfolioItem{},
		},
	}
}

// --- Üretilen kaynak metni geri çözen AST yardımcıları ---

func parseExport(t *testing.T, src string) (models.CompanyInfo, []models.TeamMember, []models.ServiceCategory) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "content.go", src, 0)
	require.NoError(t, err, "üretilen dosya geçerli Go kaynak kodu olmalı")
	require.Equal(t, "content", file.Name.Name)

	var (
		company   models.CompanyInfo
		team      []models.TeamMember
		portfolio []models.ServiceCategory
	)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			require.Len(t, vs.Names, 1)
			require.Len(t, vs.Values, 1)
			switch vs.Names[0].Name {
			case "CompanyInfo":
				company = decodeCompany(t, vs.Values[0])
			case "TeamMembers":
				for _, el := range vs.Values[0].(*ast.CompositeLit).Elts {
					team = append(team, decodeTeamMember(t, el))
				}
				if team == nil {
					team = []models.TeamMember{}
				}
			case "PortfolioData":
				for _, el := range vs.Values[0].(*ast.CompositeLit).Elts {
					portfolio = append(portfolio, decodeCategory(t, el))
				}
			}
		}
	}

	return company, team, portfolio
}

func fieldMap(t *testing.T, expr ast.Expr) map[string]ast.Expr {
	t.Helper()
	lit, ok := expr.(*ast.CompositeLit)
	require.True(t, ok, "composite literal bekleniyordu")
	out := make(map[string]ast.Expr, len(lit.Elts))
	for _, el := range lit.Elts {
		kv, ok := el.(*ast.KeyValueExpr)
		require.True(t, ok, "anahtarlı alanlar bekleniyordu")
		out[kv.Key.(*ast.Ident).Name] = kv.Value
	}
	return out
}

func decodeString(t *testing.T, expr ast.Expr) string {
	t.Helper()
	lit, ok := expr.(*ast.BasicLit)
	require.True(t, ok)
	require.Equal(t, token.STRING, lit.Kind)
	s, err := strconv.Unquote(lit.Value)
	require.NoError(t, err)
	return s
}

// decodeTypedString models.MediaKind("...") / models.ServiceType("...") gibi
// dönüşüm çağrılarının içindeki metni çözer.
func decodeTypedString(t *testing.T, expr ast.Expr) string {
	t.Helper()
	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok, "tip dönüşüm çağrısı bekleniyordu")
	require.Len(t, call.Args, 1)
	return decodeString(t, call.Args[0])
}

func decodeStringSlice(t *testing.T, expr ast.Expr) []string {
	t.Helper()
	lit, ok := expr.(*ast.CompositeLit)
	require.True(t, ok)
	out := make([]string, 0, len(lit.Elts))
	for _, el := range lit.Elts {
		out = append(out, decodeString(t, el))
	}
	return out
}

func decodeMedia(t *testing.T, expr ast.Expr) models.MediaRef {
	t.Helper()
	fields := fieldMap(t, expr)
	var m models.MediaRef
	if v, ok := fields["Kind"]; ok {
		m.Kind = models.MediaKind(decodeTypedString(t, v))
	}
	if v, ok := fields["Value"]; ok {
		m.Value = decodeString(t, v)
	}
	return m
}

func decodeCompany(t *testing.T, expr ast.Expr) models.CompanyInfo {
	t.Helper()
	fields := fieldMap(t, expr)
	var c models.CompanyInfo
	c.Name = decodeString(t, fields["Name"])
	c.Slogan = decodeString(t, fields["Slogan"])
	c.Description = decodeString(t, fields["Description"])
	if v, ok := fields["Phones"]; ok {
		c.Phones = decodeStringSlice(t, v)
	}
	if v, ok := fields["Locations"]; ok {
		c.Locations = decodeStringSlice(t, v)
	}
	if v, ok := fields["HeroBackgroundImage"]; ok {
		c.HeroBackgroundImage = decodeMedia(t, v)
	}
	if v, ok := fields["Logo"]; ok {
		c.Logo = decodeMedia(t, v)
	}
	return c
}

func decodeTeamMember(t *testing.T, expr ast.Expr) models.TeamMember {
	t.Helper()
	fields := fieldMap(t, expr)
	var m models.TeamMember
	m.ID = decodeString(t, fields["ID"])
	m.Name = decodeString(t, fields["Name"])
	m.Role = decodeString(t, fields["Role"])
	if v, ok := fields["Image"]; ok {
		m.Image = decodeMedia(t, v)
	}
	if v, ok := fields["Tags"]; ok {
		m.Tags = decodeStringSlice(t, v)
	}
	return m
}

func decodeCategory(t *testing.T, expr ast.Expr) models.ServiceCategory {
	t.Helper()
	fields := fieldMap(t, expr)
	var cat models.ServiceCategory
	cat.ID = models.ServiceType(decodeTypedString(t, fields["ID"]))
	cat.Name = decodeString(t, fields["Name"])
	cat.Icon = decodeString(t, fields["Icon"])
	cat.Items = []models.PortfolioItem{}
	if v, ok := fields["Items"]; ok {
		for _, el := range v.(*ast.CompositeLit).Elts {
			cat.Items = append(cat.Items, decodeItem(t, el))
		}
	}
	return cat
}

func decodeItem(t *testing.T, expr ast.Expr) models.PortfolioItem {
	t.Helper()
	fields := fieldMap(t, expr)
	var item models.PortfolioItem
	item.ID = decodeString(t, fields["ID"])
	item.Title = decodeString(t, fields["Title"])
	item.Description = decodeString(t, fields["Description"])
	if v, ok := fields["Image"]; ok {
		item.Image = decodeMedia(t, v)
	}
	if v, ok := fields["Video"]; ok {
		item.Video = decodeMedia(t, v)
	}
	if v, ok := fields["Gallery"]; ok {
		for _, el := range v.(*ast.CompositeLit).Elts {
			item.Gallery = append(item.Gallery, decodeMedia(t, el))
		}
	}
	if v, ok := fields["Tags"]; ok {
		item.Tags = decodeStringSlice(t, v)
	}
	return item
}

// --- Testler ---

func TestGenerate_RoundTrip(t *testing.T) {
	company := sampleCompany()
	team := sampleTeam()
	portfolio := samplePortfolio()

	src := Generate(company, team, portfolio)

	gotCompany, gotTeam, gotPortfolio := parseExport(t, src)
	assert.Equal(t, company, gotCompany)
	assert.Equal(t, team, gotTeam)
	assert.Equal(t, portfolio, gotPortfolio)
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(sampleCompany(), sampleTeam(), samplePortfolio())
	second := Generate(sampleCompany(), sampleTeam(), samplePortfolio())
	assert.Equal(t, first, second)
}

func TestGenerate_SeedFileShape(t *testing.T) {
	src := Generate(sampleCompany(), sampleTeam(), samplePortfolio())

	assert.Contains(t, src, "package content")
	assert.Contains(t, src, `"zanaat.studio/models"`)
	assert.Contains(t, src, `"zanaat.studio/pkg/contentfile"`)
	assert.Contains(t, src, "var FullContext = contentfile.FlattenContext(CompanyInfo, TeamMembers, PortfolioData)")
}

// Metin alanlarında tırnak, ters bölü, satır sonu ve çok baytlı karakterler
// kaynak sözdizimini bozmamalı ve aynen geri çözülmeli.
func TestGenerate_EscapesHostileStrings(t *testing.T) {
	company := sampleCompany()
	company.Name = `Zanaat "Kreatif" \ Stüdyo`
	company.Slogan = "birinci satır\nikinci satır"
	company.Description = "译道佳华 — çok baytlı metin ve `backtick`"

	team := []models.TeamMember{{
		ID:   "t1",
		Name: "İsim \"tırnaklı\"",
		Role: "Rol\tsekmeli",
		Tags: []string{"a\"b", "c\\d"},
	}}

	src := Generate(company, team, nil)

	gotCompany, gotTeam, _ := parseExport(t, src)
	assert.Equal(t, company, gotCompany)
	assert.Equal(t, team, gotTeam)
}

func TestGenerate_OmitsZeroMediaAndNilSlices(t *testing.T) {
	company := models.CompanyInfo{Name: "X", Slogan: "Y", Description: "Z"}
	src := Generate(company, nil, nil)

	assert.NotContains(t, src, "Logo:")
	assert.NotContains(t, src, "HeroBackgroundImage:")
	assert.NotContains(t, src, "Phones:")

	gotCompany, gotTeam, gotPortfolio := parseExport(t, src)
	assert.Equal(t, company, gotCompany)
	assert.Empty(t, gotTeam)
	assert.Empty(t, gotPortfolio)
}

func TestFlattenContext(t *testing.T) {
	got := FlattenContext(sampleCompany(), sampleTeam(), samplePortfolio())

	assert.Contains(t, got, "Company Name: Zanaat Kreatif\n")
	assert.Contains(t, got, "Slogan: Tutkuyla tasarlar, sizin için üretiriz\n")
	assert.Contains(t, got, "Phone Numbers: 0532 417 28 96, 0212 346 71 05\n")
	assert.Contains(t, got, "Team Members: Kurucu Ortak A (Yönetmen), Kurucu Ortak B (Müzik Prodüktörü)\n")
	assert.Contains(t, got, "Services:\n")
	assert.Contains(t, got, "- Marka Tasarımı: Kurumsal Kimlik\n")
	assert.Contains(t, got, "- Video Prodüksiyon: \n")
}

func TestFlattenContext_MatchesGeneratedData(t *testing.T) {
	company := sampleCompany()
	team := sampleTeam()
	portfolio := samplePortfolio()

	src := Generate(company, team, portfolio)
	gotCompany, gotTeam, gotPortfolio := parseExport(t, src)

	// Dışa aktarılan dosya yüklendiğinde aynı bağlam özetini üretmeli.
	assert.Equal(t,
		FlattenContext(company, team, portfolio),
		FlattenContext(gotCompany, gotTeam, gotPortfolio))
	assert.True(t, strings.HasPrefix(FlattenContext(company, team, portfolio), "Company Name: "))
}
