// Package content sitenin seed verisini taşır. Buradaki değerler derleme
// zamanı varsayılanlarıdır; kalıcı depoda kayıtlı bir anlık görüntü varsa
// açılışta onun yerine geçer. Yönetim panelindeki "dışa aktar" çıktısı bu
// dosyayla aynı biçimdedir ve doğrudan bu dosyanın yerine konabilir.
package content

import (
	"zanaat.studio/models"
	"zanaat.studio/pkg/contentfile"
)

var CompanyInfo = models.CompanyInfo{
	Name:        "Zanaat Kreatif",
	Slogan:      "Tutkuyla tasarlar, sizin için üretiriz",
	Phones:      []string{"0532 417 28 96", "0212 346 71 05"},
	Description: "Zanaat Kreatif, on yılı aşkın süredir marka tasarımı atölyesi olarak çalışan ekibin kurduğu, görsel iletişimi merkezine alan bir kültür ve yaratıcılık stüdyosudur. Kurumlara, markalara ve etkinliklere uçtan uca tanıtım çözümleri üretir.",
	Locations:   []string{"İstanbul · Karaköy"},
	Logo:        models.MediaRef{Kind: models.MediaKindRemote, Value: "https://cdn-icons-png.flaticon.com/512/5977/5977591.png"},
}

var TeamMembers = []models.TeamMember{
	{
		ID:    "t1",
		Name:  "Kurucu Ortak A",
		Role:  "Yönetmen / Marka Tasarımcısı",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=101"},
		Tags:  []string{"Yönetmen", "Tasarım", "Kurucu"},
	},
	{
		ID:    "t2",
		Name:  "Kurucu Ortak B",
		Role:  "Yönetmen / Görüntü Yönetmeni / Drone Pilotu",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=102"},
		Tags:  []string{"Kamera", "Drone", "Kurucu"},
	},
	{
		ID:    "t3",
		Name:  "Kurucu Ortak C",
		Role:  "Bağımsız Müzik Prodüktörü",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=103"},
		Tags:  []string{"Müzik", "Prodüksiyon", "Kurucu"},
	},
	{
		ID:    "t4",
		Name:  "Kurgu Sorumlusu",
		Role:  "Işık Şefi / Kurgucu",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=104"},
		Tags:  []string{"Kurgu", "Işık"},
	},
	{
		ID:    "t5",
		Name:  "Efekt ve Ambalaj",
		Role:  "Kurgucu / Görsel Efekt Tasarımcısı",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=105"},
		Tags:  []string{"Efekt", "Ambalaj"},
	},
	{
		ID:    "t6",
		Name:  "Malzeme Sorumlusu",
		Role:  "Baskı ve Malzeme Yöneticisi",
		Image: models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/400/500?random=106"},
		Tags:  []string{"Malzeme", "Uygulama"},
	},
}

var PortfolioData = []models.ServiceCategory{
	{
		ID:   models.ServiceTypeBranding,
		Name: "Marka Tasarımı",
		Icon: "Palette",
		Items: []models.PortfolioItem{
			{
				ID:          "b1",
				Title:       "Vadi Park Konutları",
				Description: "Site dış cephe kimliği, VI tasarımı ve uygulama çizimleri",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=1"},
				Gallery: []models.MediaRef{
					{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=20"},
					{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=21"},
					{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=22"},
				},
				Tags: []string{"VI Tasarımı", "Yönlendirme Sistemi"},
			},
			{
				ID:          "b2",
				Title:       "İl Halk Kütüphanesi Maskotu",
				Description: "\"Kitap Kedisi\" karakter ve IP tasarım planlaması",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=2"},
				Tags:        []string{"IP Tasarımı", "Kültür Ürünü"},
			},
			{
				ID:          "b3",
				Title:       "Bölge Bankası Şube Kimliği",
				Description: "Şubeye özel VI tasarımı, afiş ve basılı malzeme",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=3"},
				Tags:        []string{"Banka", "VI"},
			},
		},
	},
	{
		ID:   models.ServiceTypeVideo,
		Name: "Video Prodüksiyon",
		Icon: "Video",
		Items: []models.PortfolioItem{
			{
				ID:          "v1",
				Title:       "Aslan Film Tanıtımı",
				Description: "Sertifikalı renk düzenleme eğitmenliği, sinema kalitesinde renk.",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=4"},
				Video:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://www.w3schools.com/html/mov_bbb.mp4"},
				Tags:        []string{"Tanıtım Filmi", "Kısa Film"},
			},
			{
				ID:          "v2",
				Title:       "Ulusal Enerji Kurumu",
				Description: "Kurumsal tanıtım filmi çekimi ve havadan görüntüleme",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=5"},
				Tags:        []string{"Kurumsal", "Drone"},
			},
		},
	},
	{
		ID:   models.ServiceTypeMusic,
		Name: "Müzik Prodüksiyon",
		Icon: "Music",
		Items: []models.PortfolioItem{
			{
				ID:          "m1",
				Title:       "Şehir Tanıtım Bestesi",
				Description: "Festival açılışı için özgün beste ve kayıt",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=7"},
				Tags:        []string{"Beste", "Kayıt"},
			},
		},
	},
	{
		ID:   models.ServiceTypeEvent,
		Name: "Etkinlik Yönetimi",
		Icon: "Tent",
		Items: []models.PortfolioItem{
			{
				ID:          "e1",
				Title:       "Bahar Tasarım Haftası",
				Description: "Sahne tasarımı, teknik kurulum ve akış yönetimi",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=8"},
				Tags:        []string{"Sahne", "Organizasyon"},
			},
		},
	},
	{
		ID:   models.ServiceTypePrinting,
		Name: "Baskı ve Uygulama",
		Icon: "Printer",
		Items: []models.PortfolioItem{
			{
				ID:          "p1",
				Title:       "Müze Sergi Kataloğu",
				Description: "Katalog tasarımı, baskı takibi ve yerinde uygulama",
				Image:       models.MediaRef{Kind: models.MediaKindRemote, Value: "https://picsum.photos/800/600?random=9"},
				Tags:        []string{"Katalog", "Baskı"},
			},
		},
	},
}

var FullContext = contentfile.FlattenContext(CompanyInfo, TeamMembers, PortfolioData)
