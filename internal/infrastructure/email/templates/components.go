package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"regexp"
	"strings"
)

type ButtonProps struct {
	Text            string
	URL             string
	BackgroundColor string
	TextColor       string
}

type buttonTemplateData struct {
	BackgroundColor string
	URL             string
	TextColor       string
	Text            string
}

var buttonTemplate = template.Must(template.New("emailButton").Parse(`
<table role="presentation" border="0" cellpadding="0" cellspacing="0" class="btn btn-primary" style="border-collapse: separate; mso-table-lspace: 0pt; mso-table-rspace: 0pt; box-sizing: border-box; width: 100%; min-width: 100%;" width="100%">
  <tbody>
    <tr>
      <td align="left" style="font-family: Helvetica, sans-serif; font-size: 16px; vertical-align: top; padding-bottom: 16px;" valign="top">
        <table role="presentation" border="0" cellpadding="0" cellspacing="0" style="border-collapse: separate; mso-table-lspace: 0pt; mso-table-rspace: 0pt; width: auto;">
          <tbody>
            <tr>
              <td style="font-family: Helvetica, sans-serif; font-size: 16px; vertical-align: top; border-radius: 4px; text-align: center; background-color: {{.BackgroundColor}};" valign="top" align="center" bgcolor="{{.BackgroundColor}}">
                <a href="{{.URL}}" target="_blank" style="border: solid 2px {{.BackgroundColor}}; border-radius: 4px; box-sizing: border-box; cursor: pointer; display: inline-block; font-size: 16px; font-weight: bold; margin: 0; padding: 12px 24px; text-decoration: none; background-color: {{.BackgroundColor}}; border-color: {{.BackgroundColor}}; color: {{.TextColor}};">{{.Text}}</a>
              </td>
            </tr>
          </tbody>
        </table>
      </td>
    </tr>
  </tbody>
</table>`))

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// sanitizeColor accepts only six-digit hex colors.
func sanitizeColor(color string) string {
	if hexColorPattern.MatchString(color) {
		return color
	}
	return "#4a90e2"
}

// sanitizeEmailURL rejects anything but absolute http(s) links.
func sanitizeEmailURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}

func GetButton(props ButtonProps) string {
	backgroundColor := sanitizeColor(props.BackgroundColor)
	textColor := props.TextColor
	if !hexColorPattern.MatchString(textColor) {
		textColor = "#ffffff"
	}

	sanitizedURL := sanitizeEmailURL(props.URL)
	if sanitizedURL == "" {
		log.Printf("Invalid or unsafe URL in email button: %s", props.URL)
		sanitizedURL = "#"
	}

	data := buttonTemplateData{
		BackgroundColor: backgroundColor,
		URL:             sanitizedURL,
		TextColor:       textColor,
		Text:            props.Text, // escaped by template
	}

	var buf bytes.Buffer
	if err := buttonTemplate.Execute(&buf, data); err != nil {
		log.Printf("Error executing email button template: %v", err)
		return `<div style="color: red;">Button template error</div>`
	}

	return buf.String()
}

// GetHeading renders a heading with the text escaped.
func GetHeading(text string) string {
	return fmt.Sprintf(
		`<h2 style="font-family: Helvetica, sans-serif; font-size: 24px; font-weight: bold; margin: 0; margin-bottom: 16px; color: #06038d;">%s</h2>`,
		template.HTMLEscapeString(text),
	)
}

// GetParagraph renders a paragraph with the text escaped.
func GetParagraph(text string) string {
	return fmt.Sprintf(
		`<p style="font-family: Helvetica, sans-serif; font-size: 16px; font-weight: normal; margin: 0; margin-bottom: 16px;">%s</p>`,
		template.HTMLEscapeString(text),
	)
}

// GetMutedParagraph renders smaller secondary text, escaped.
func GetMutedParagraph(text string) string {
	return fmt.Sprintf(
		`<p style="font-family: Helvetica, sans-serif; font-size: 14px; font-weight: normal; margin: 0; margin-bottom: 16px; color: #9a9ea6;">%s</p>`,
		template.HTMLEscapeString(text),
	)
}

type SitePublishedEmailProps struct {
	SiteName   string
	TemplateID string
	SiteURL    string
}

// GetSitePublishedEmailContent builds the body for the publish notification.
func GetSitePublishedEmailContent(props SitePublishedEmailProps) string {
	var b strings.Builder
	b.WriteString(GetHeading("Your site is live"))
	b.WriteString(GetParagraph(fmt.Sprintf("%s has been published and is now serving visitors.", props.SiteName)))
	if props.SiteURL != "" {
		b.WriteString(GetButton(ButtonProps{Text: "View your site", URL: props.SiteURL}))
	}
	b.WriteString(GetMutedParagraph(fmt.Sprintf("Template: %s", props.TemplateID)))
	return b.String()
}

type DownloadLinkEmailProps struct {
	SiteName    string
	DownloadURL string
	ExpiresIn   string
}

// GetDownloadLinkEmailContent builds the body for the single-use download link.
func GetDownloadLinkEmailContent(props DownloadLinkEmailProps) string {
	var b strings.Builder
	b.WriteString(GetHeading("Your export is ready"))
	b.WriteString(GetParagraph(fmt.Sprintf("The export bundle for %s is ready to download.", props.SiteName)))
	b.WriteString(GetButton(ButtonProps{Text: "Download bundle", URL: props.DownloadURL}))
	b.WriteString(GetMutedParagraph(fmt.Sprintf("This link can be used once and expires in %s.", props.ExpiresIn)))
	return b.String()
}
