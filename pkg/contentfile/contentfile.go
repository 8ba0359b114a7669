// Package contentfile içerik deposunun anlık durumunu, sitenin kendi seed
// dosyasıyla (content/content.go) aynı biçimde yüklenebilir Go kaynak koduna
// dönüştürür. Böylece döngü kapanır: seed -> düzenle -> dışa aktar -> seed
// dosyasını değiştir -> sonraki derleme düzenlenmiş veriyi seed olarak kullanır.
package contentfile

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"zanaat.studio/models"
)

// Generate mevcut içerik üçlüsünü content paketi kaynak metni olarak üretir.
// Çıktı deterministiktir ve gofmt ile biçimlendirilir. Gömülü metinler
// strconv.Quote ile kaçırıldığı için tırnak, ters bölü ve satır sonları
// kaynak sözdizimini bozamaz.
func Generate(company models.CompanyInfo, team []models.TeamMember, portfolio []models.ServiceCategory) string {
	var b strings.Builder

	b.WriteString("// Code generated by the admin panel export. Seed içeriği buradan düzenlenebilir.\n")
	b.WriteString("package content\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"zanaat.studio/models\"\n")
	b.WriteString("\t\"zanaat.studio/pkg/contentfile\"\n")
	b.WriteString(")\n\n")

	b.WriteString("var CompanyInfo = ")
	writeCompany(&b, company, 0)
	b.WriteString("\n\n")

	b.WriteString("var TeamMembers = []models.TeamMember{\n")
	for _, m := range team {
		b.WriteString("\t")
		writeTeamMember(&b, m, 1)
		b.WriteString(",\n")
	}
	b.WriteString("}\n\n")

	b.WriteString("var PortfolioData = []models.ServiceCategory{\n")
	for _, cat := range portfolio {
		b.WriteString("\t")
		writeCategory(&b, cat, 1)
		b.WriteString(",\n")
	}
	b.WriteString("}\n\n")

	b.WriteString("var FullContext = contentfile.FlattenContext(CompanyInfo, TeamMembers, PortfolioData)\n")

	src := b.String()
	formatted, err := format.Source([]byte(src))
	if err != nil {
		// Üretici hatalı sözdizimi yazmamalı; yine de biçimlendirilemeyen
		// çıktıyı olduğu gibi döndürmek veriyi kaybetmekten iyidir.
		return src
	}
	return string(formatted)
}

// FlattenContext üçlüyü, üretken model çağrısında bağlam olarak kullanılacak
// düz metin özetine indirger. Seed dosyası ve dışa aktarılan dosya aynı
// fonksiyonu çağırdığı için özet her zaman veriyle tutarlı kalır.
func FlattenContext(company models.CompanyInfo, team []models.TeamMember, portfolio []models.ServiceCategory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Company Name: %s\n", company.Name)
	fmt.Fprintf(&b, "Slogan: %s\n", company.Slogan)
	fmt.Fprintf(&b, "Phone Numbers: %s\n", strings.Join(company.Phones, ", "))
	fmt.Fprintf(&b, "Description: %s\n", company.Description)

	roster := make([]string, 0, len(team))
	for _, m := range team {
		roster = append(roster, fmt.Sprintf("%s (%s)", m.Name, m.Role))
	}
	fmt.Fprintf(&b, "Team Members: %s\n", strings.Join(roster, ", "))

	b.WriteString("Services:\n")
	for _, cat := range portfolio {
		titles := make([]string, 0, len(cat.Items))
		for _, item := range cat.Items {
			titles = append(titles, item.Title)
		}
		fmt.Fprintf(&b, "- %s: %s\n", cat.Name, strings.Join(titles, ", "))
	}

	return b.String()
}

// --- Literal yazıcılar ---

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
}

func writeCompany(b *strings.Builder, c models.CompanyInfo, depth int) {
	b.WriteString("models.CompanyInfo{\n")
	writeStringField(b, depth+1, "Name", c.Name)
	writeStringField(b, depth+1, "Slogan", c.Slogan)
	writeStringSliceField(b, depth+1, "Phones", c.Phones)
	writeStringField(b, depth+1, "Description", c.Description)
	writeStringSliceField(b, depth+1, "Locations", c.Locations)
	writeMediaField(b, depth+1, "HeroBackgroundImage", c.HeroBackgroundImage)
	writeMediaField(b, depth+1, "Logo", c.Logo)
	indent(b, depth)
	b.WriteString("}")
}

func writeTeamMember(b *strings.Builder, m models.TeamMember, depth int) {
	b.WriteString("{\n")
	writeStringField(b, depth+1, "ID", m.ID)
	writeStringField(b, depth+1, "Name", m.Name)
	writeStringField(b, depth+1, "Role", m.Role)
	writeMediaField(b, depth+1, "Image", m.Image)
	writeStringSliceField(b, depth+1, "Tags", m.Tags)
	indent(b, depth)
	b.WriteString("}")
}

func writeCategory(b *strings.Builder, cat models.ServiceCategory, depth int) {
	b.WriteString("{\n")
	indent(b, depth+1)
	fmt.Fprintf(b, "ID:   models.ServiceType(%s),\n", strconv.Quote(string(cat.ID)))
	writeStringField(b, depth+1, "Name", cat.Name)
	writeStringField(b, depth+1, "Icon", cat.Icon)
	indent(b, depth+1)
	b.WriteString("Items: []models.PortfolioItem{\n")
	for _, item := range cat.Items {
		indent(b, depth+2)
		writeItem(b, item, depth+2)
		b.WriteString(",\n")
	}
	indent(b, depth+1)
	b.WriteString("},\n")
	indent(b, depth)
	b.WriteString("}")
}

func writeItem(b *strings.Builder, item models.PortfolioItem, depth int) {
	b.WriteString("{\n")
	writeStringField(b, depth+1, "ID", item.ID)
	writeStringField(b, depth+1, "Title", item.Title)
	writeStringField(b, depth+1, "Description", item.Description)
	writeMediaField(b, depth+1, "Image", item.Image)
	writeMediaField(b, depth+1, "Video", item.Video)
	if item.Gallery != nil {
		indent(b, depth+1)
		b.WriteString("Gallery: []models.MediaRef{\n")
		for _, g := range item.Gallery {
			indent(b, depth+2)
			writeMediaLiteral(b, g)
			b.WriteString(",\n")
		}
		indent(b, depth+1)
		b.WriteString("},\n")
	}
	writeStringSliceField(b, depth+1, "Tags", item.Tags)
	indent(b, depth)
	b.WriteString("}")
}

func writeStringField(b *strings.Builder, depth int, name, value string) {
	indent(b, depth)
	fmt.Fprintf(b, "%s: %s,\n", name, strconv.Quote(value))
}

// writeStringSliceField nil dilimi alanı atlayarak, boş dilimi []string{}
// olarak yazar; yükleme sonrası derin eşitlik bozulmaz.
func writeStringSliceField(b *strings.Builder, depth int, name string, values []string) {
	if values == nil {
		return
	}
	indent(b, depth)
	fmt.Fprintf(b, "%s: []string{", name)
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteString("},\n")
}

// writeMediaField sıfır referansları atlar; alan yokluğu sıfır değere çözülür.
func writeMediaField(b *strings.Builder, depth int, name string, m models.MediaRef) {
	if m.IsZero() {
		return
	}
	indent(b, depth)
	b.WriteString(name)
	b.WriteString(": ")
	writeMediaLiteral(b, m)
	b.WriteString(",\n")
}

func writeMediaLiteral(b *strings.Builder, m models.MediaRef) {
	fmt.Fprintf(b, "models.MediaRef{Kind: models.MediaKind(%s), Value: %s}",
		strconv.Quote(string(m.Kind)), strconv.Quote(m.Value))
}
