package mailer

import "html/template"

// templates uses the builtin "or" to substitute defaults for empty fields.
var templates = template.Must(template.New("mail").Parse(`
{{define "contact"}}
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{or .Phone "Not provided"}}</p>
<p><strong>Subject:</strong> {{or .Subject "General Inquiry"}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Submitted on: {{.CreatedAt.Format "Jan 2, 2006 15:04 MST"}}</small></p>
{{end}}

{{define "contact_reply"}}
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We have received your message and will get back to you within 24-48 hours.</p>
<p>In the meantime, feel free to explore our services at <a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
<br>
<p>Best regards,<br>The BrandMark Team</p>
{{end}}

{{define "career"}}
<h2>New Job Application</h2>
<p><strong>Position:</strong> {{.Position}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Experience:</strong> {{or .Experience "Not specified"}}</p>
<p><strong>Cover Letter:</strong></p>
<p>{{or .CoverLetter "Not provided"}}</p>
<p><strong>Resume:</strong> <a href="{{.ResumeURL}}">{{.ResumeURL}}</a></p>
{{if .PortfolioURL}}<p><strong>Portfolio:</strong> <a href="{{.PortfolioURL}}">{{.PortfolioURL}}</a></p>{{end}}
<hr>
<p><small>Submitted on: {{.CreatedAt.Format "Jan 2, 2006 15:04 MST"}}</small></p>
{{end}}

{{define "quote"}}
<h2>New Quote Request</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{or .Phone "Not provided"}}</p>
<p><strong>Website:</strong> {{or .Website "Not provided"}}</p>
<p><strong>Service:</strong> {{.ServiceLabel}}</p>
<p><strong>Company size:</strong> {{.CompanySize}}</p>
<p><strong>Market:</strong> {{.Market}}</p>
<p><strong>Timeline:</strong> {{or .Timeline "Not specified"}}</p>
<p><strong>Budget:</strong> {{or .Budget "Not specified"}}</p>
<p><strong>Notes:</strong> {{or .Notes "None"}}</p>
<p><strong>Quoted price:</strong> {{.QuoteDisplay}}</p>
{{end}}

{{define "quote_reply"}}
<h2>Your BrandMark Solutions quote, {{.Name}}</h2>
<p>Thank you for your interest in our <strong>{{.ServiceLabel}}</strong> service.</p>
<p>Your starting price is <strong>{{.QuoteDisplay}}</strong>.</p>
<p>A member of our team will contact you shortly to discuss the details.</p>
<br>
<p>Best regards,<br>The BrandMark Team</p>
{{end}}

{{define "newsletter_welcome"}}
<h2>Welcome to BrandMark Solutions!</h2>
<p>Thank you for subscribing to our newsletter.</p>
<p>You'll receive updates about our latest services, tips, and exclusive offers.</p>
<br>
<p>Best regards,<br>The BrandMark Team</p>
{{end}}
`))
