package notify

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

const (
	bookingDateLayout = "Monday, January 2, 2006"
	surveyDateLayout  = "January 2, 2006"
)

var funcs = map[string]any{
	"inc": func(i int) int { return i + 1 },
}

const layoutHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eaeaea; border-radius: 5px;">
  <div style="background: linear-gradient(135deg, #3f51b5 0%, #1a237e 100%); padding: 30px 20px; text-align: center;">
    <h1 style="color: #ffffff; margin: 0; font-size: 24px;">{{.Heading}}</h1>
  </div>
  <div style="padding: 30px;">
    {{template "body" .}}
  </div>
  <div style="border-top: 1px solid #eeeeee; padding: 20px; text-align: center; background-color: #fafafa;">
    <p style="color: #666666; font-size: 14px; margin: 0;">Thank you for using Outlaw Survey Generator!</p>
  </div>
</div>
`

const detailsHTML = `{{define "body"}}<p style="font-size: 16px; color: #333333; margin-top: 0;">{{.Greeting}}</p>
    <p style="font-size: 16px; color: #333333;">{{.Intro}}</p>
    <div style="background-color: #f5f7ff; border-left: 4px solid #3f51b5; padding: 15px; margin: 25px 0; border-radius: 4px;">
{{- range .Facts}}
      <p style="margin: 5px 0; font-size: 16px;"><strong>{{.Label}}:</strong> {{.Value}}</p>
{{- end}}
    </div>
{{- if .QuestionsHeading}}
    <h3 style="color: #3f51b5; margin-top: 30px; font-size: 18px;">{{.QuestionsHeading}}</h3>
    <ol style="padding-left: 20px; color: #333333;">
{{- range .Questions}}
      <li style="margin-bottom: 10px;">{{.}}</li>
{{- else}}
      <li style="margin-bottom: 10px;">{{.Placeholder}}</li>
{{- end}}
    </ol>
{{- end}}
{{- if .Closing}}
    <p style="font-size: 16px; color: #333333; margin-top: 25px;">{{.Closing}}</p>
{{- end}}
    <p style="font-size: 16px; color: #333333; margin-top: 35px;">Best regards,<br>The Outlaw Team</p>{{end}}`

const detailsText = `{{.Heading}}

{{.Greeting}}

{{.Intro}}

{{range .Facts}}{{.Label}}: {{.Value}}
{{end}}
{{- if .QuestionsHeading}}
{{.QuestionsHeading}}
{{range $i, $q := .Questions}}{{inc $i}}. {{$q}}
{{else}}{{.Placeholder}}
{{end}}{{end}}
{{- if .Closing}}
{{.Closing}}
{{end}}
Best regards,
The Outlaw Team

Thank you for using Outlaw Survey Generator!
`

var (
	detailsHTMLTmpl = htmltemplate.Must(htmltemplate.Must(htmltemplate.New("layout").Parse(layoutHTML)).Parse(detailsHTML))
	detailsTextTmpl = texttemplate.Must(texttemplate.New("details").Funcs(funcs).Parse(detailsText))
)

type fact struct {
	Label string
	Value string
}

// view is the data shared by the HTML and text renderings of one email.
type view struct {
	Heading          string
	Greeting         string
	Intro            string
	Facts            []fact
	QuestionsHeading string
	Questions        []string
	Placeholder      string
	Closing          string
}

func render(v view) (html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := detailsHTMLTmpl.Execute(&hb, v); err != nil {
		return "", "", err
	}
	if err := detailsTextTmpl.Execute(&tb, v); err != nil {
		return "", "", err
	}
	return hb.String(), strings.TrimLeft(tb.String(), "\n"), nil
}

func bookingView(d BookingDetails) (subject string, v view) {
	v = view{
		Facts: []fact{
			{"Date", d.Date.UTC().Format(bookingDateLayout)},
			{"Time", d.StartTime + " - " + d.EndTime},
		},
		QuestionsHeading: "Your Survey Questions:",
		Questions:        d.Questions,
		Placeholder:      "No questions provided",
	}

	switch {
	case d.IsCancellation && d.IsCreator:
		subject = "Your Interview Slot Booking Was Cancelled"
		v.Heading = "Booking Cancelled"
		v.Greeting = "Dear Creator,"
		v.Intro = "The booking for one of your interview slots has been cancelled. The slot is open for booking again."
	case d.IsCancellation:
		subject = "Your SME Interview Has Been Cancelled"
		v.Heading = "Interview Cancelled"
		v.Greeting = "Dear Expert,"
		v.Intro = "Your SME interview has been cancelled. Here are the details of the cancelled session:"
		if !d.IsSME {
			v.Greeting = "Dear Client,"
		}
	case d.IsCreator:
		subject = "Your Interview Slot Has Been Booked"
		v.Heading = "Your Slot Has Been Booked!"
		v.Greeting = "Dear Creator,"
		v.Intro = "An SME has booked one of your interview slots. Here are the details:"
		v.Closing = "If you need to reschedule or cancel, please do so at least 24 hours in advance."
	default:
		subject = "Your SME Interview is Confirmed"
		v.Heading = "Your Interview is Confirmed!"
		v.Greeting = "Dear Client,"
		v.Intro = "Your SME interview has been successfully scheduled. Here are the details:"
		v.Closing = "Please prepare your responses to these questions before the interview. If you need to reschedule or cancel, please contact us at least 24 hours in advance."
	}
	return subject, v
}

func surveyView(d SurveyDetails) view {
	title := d.Title
	if title == "" {
		title = "Custom Survey"
	}
	return view{
		Heading:  "Your Survey is Ready!",
		Greeting: "Dear Creator,",
		Intro:    "Your AI-generated survey has been successfully created. Here are the details:",
		Facts: []fact{
			{"Title", title},
			{"Created on", d.CreatedAt.UTC().Format(surveyDateLayout)},
		},
		QuestionsHeading: "Your Generated Questions:",
		Questions:        d.Questions,
		Placeholder:      "No questions generated",
		Closing:          "You can now use these questions for your SME interviews. Log in to your Outlaw account to manage your survey or schedule interviews.",
	}
}

func testView(environment, server, at string) view {
	return view{
		Heading:  "Email System Test",
		Greeting: "This is a test email from the Outlaw Survey App.",
		Intro:    "If you're receiving this email, it means your email configuration is working correctly!",
		Facts: []fact{
			{"Test conducted at", at},
			{"Environment", environment},
			{"Server", server},
		},
	}
}
