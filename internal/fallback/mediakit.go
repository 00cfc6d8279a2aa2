package fallback

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"creatoros/internal/domain"
)

const defaultBrandColor = "#6366f1"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Sections and design tips of the rendered HTML kit.
var (
	MediaKitSections = []string{
		"Creator Bio", "Platform Statistics", "Audience Demographics",
		"Services", "Past Collaborations", "Contact Information",
	}
	MediaKitDesignTips = []string{
		"Use consistent brand colors throughout",
		"Keep sections concise and scannable",
		"Include high-quality profile image",
		"Add social proof with past collaborations",
		"Make contact information prominent",
		"Ensure mobile responsiveness",
	}
)

type mediaKitView struct {
	CreatorName     string
	Bio             string
	Niche           string
	Location        string
	Email           string
	ProfileImageURL string
	BrandLogoURL    string
	BrandColor      template.CSS
	Platforms       []domain.MediaKitPlatform
	Audience        domain.Audience
	Services        []string
	PastCollabs     []string
}

var mediaKitTemplate = template.Must(template.New("mediakit").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.CreatorName}} - Media Kit</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Inter', sans-serif; line-height: 1.5; color: #1a1a1a; background: #f8fafc; padding: 40px 20px; }
.media-kit { max-width: 800px; margin: 0 auto; background: white; border-radius: 24px; overflow: hidden; box-shadow: 0 20px 60px rgba(0,0,0,0.1); }
.header { background: {{.BrandColor}}; color: white; padding: 60px 40px; text-align: center; position: relative; }
.logo { position: absolute; top: 20px; right: 20px; width: 60px; height: 60px; object-fit: contain; border-radius: 12px; }
.profile-image { width: 120px; height: 120px; border-radius: 50%; object-fit: cover; margin: 0 auto 20px; display: block; }
.creator-name { font-size: 48px; font-weight: 800; }
.creator-niche { font-size: 20px; opacity: 0.9; }
.section { padding: 32px 40px; border-bottom: 1px solid #f1f5f9; }
.section h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 0.08em; color: {{.BrandColor}}; margin-bottom: 16px; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 16px; }
.stat { background: #f8fafc; border-radius: 16px; padding: 20px; text-align: center; }
.stat-value { font-size: 28px; font-weight: 800; }
.tags span { display: inline-block; background: #f1f5f9; border-radius: 999px; padding: 6px 14px; margin: 0 8px 8px 0; }
@media print { body { background: white; padding: 0; } .media-kit { box-shadow: none; } }
</style>
</head>
<body>
<div class="media-kit">
  <div class="header">
    {{if .BrandLogoURL}}<img class="logo" src="{{.BrandLogoURL}}" alt="Brand logo">{{end}}
    {{if .ProfileImageURL}}<img class="profile-image" src="{{.ProfileImageURL}}" alt="{{.CreatorName}}">{{end}}
    <div class="creator-name">{{.CreatorName}}</div>
    <div class="creator-niche">{{.Niche}} Creator</div>
    {{if .Location}}<div class="creator-location">📍 {{.Location}}</div>{{end}}
  </div>
  <div class="section">
    <h2>About</h2>
    <p>{{.Bio}}</p>
  </div>
  <div class="section">
    <h2>Platform Statistics</h2>
    <div class="stats">
      {{range .Platforms}}<div class="stat"><div class="stat-value">{{.Followers}}</div><div>{{.Name}}</div><div>{{.Handle}}</div></div>
      {{end}}
    </div>
  </div>
  <div class="section">
    <h2>Audience Demographics</h2>
    <div class="stats">
      <div class="stat"><div class="stat-value">{{.Audience.Gender}}</div><div>Gender</div></div>
      <div class="stat"><div class="stat-value">{{.Audience.Age}}</div><div>Age</div></div>
      <div class="stat"><div class="stat-value">{{.Audience.Countries}}</div><div>Top Countries</div></div>
    </div>
  </div>
  {{if .Services}}<div class="section">
    <h2>Services</h2>
    <div class="tags">{{range .Services}}<span>{{.}}</span>{{end}}</div>
  </div>{{end}}
  {{if .PastCollabs}}<div class="section">
    <h2>Past Collaborations</h2>
    <div class="tags">{{range .PastCollabs}}<span>{{.}}</span>{{end}}</div>
  </div>{{end}}
  <div class="section">
    <h2>Contact</h2>
    <p>{{if .Email}}<a href="mailto:{{.Email}}">{{.Email}}</a>{{else}}Available on request{{end}}</p>
  </div>
</div>
</body>
</html>
`))

// MediaKit renders the kit without the LLM. The bio is used unchanged.
func MediaKit(req domain.MediaKitRequest) (*domain.MediaKitResponse, error) {
	html, err := RenderMediaKitHTML(req)
	if err != nil {
		return nil, err
	}
	return &domain.MediaKitResponse{
		HTMLContent: html,
		Sections:    append([]string(nil), MediaKitSections...),
		DesignTips:  append([]string(nil), MediaKitDesignTips...),
		MatchedData: []domain.InfluencerData{},
	}, nil
}

// RenderMediaKitHTML fills the HTML template. All request fields are escaped.
func RenderMediaKitHTML(req domain.MediaKitRequest) (string, error) {
	color := defaultBrandColor
	if hexColor.MatchString(req.BrandColor) {
		color = req.BrandColor
	}

	view := mediaKitView{
		CreatorName:     req.CreatorName,
		Bio:             req.Bio,
		Niche:           req.Niche,
		Location:        req.Location,
		Email:           req.Email,
		ProfileImageURL: req.ProfileImageURL,
		BrandLogoURL:    req.BrandLogoURL,
		BrandColor:      template.CSS(color),
		Platforms:       req.Platforms,
		Audience:        req.Audience,
		Services:        splitCSV(req.Services),
		PastCollabs:     splitCSV(req.PastCollabs),
	}

	var buf bytes.Buffer
	if err := mediaKitTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
