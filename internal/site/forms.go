package site

import (
	"github.com/a-h/templ"

	"github.com/genassess/genesis-assessment-hub/internal/models"
	"github.com/genassess/genesis-assessment-hub/internal/orderform"
)

// WhatsAppURL opens a chat with the operations team.
const WhatsAppURL = "https://wa.me/211920879329?text=Hello%20Genesis%20Examinations%21%20I%20would%20like%20to%20inquire%20about%20ordering%20exams%20for%20my%20institution."

// OrderTokenField is the hidden input that ties a POST to the order form
// it came from.
const OrderTokenField = "formToken"

// submitGuard disables the submit button on the first submit so a double
// click sends one request.
const submitGuard = "var b=this.querySelector('button[type=submit]');if(b.disabled){return false;}b.disabled=true;b.textContent=b.dataset.submitting;"

// FormView is what a form page needs to redraw itself.
type FormView struct {
	Values    map[string]string
	Errors    map[string]string
	Submitted bool
	// Token identifies the rendered order form. Empty for the contact form.
	Token string
}

type formField struct {
	name     string
	input    string
	labelKey string
}

var orderInstitutionFields = []formField{
	{orderform.FieldInstitutionName, "text", "order.institutionName"},
	{orderform.FieldContactName, "text", "order.contactName"},
	{orderform.FieldEmail, "email", "order.email"},
	{orderform.FieldPhone, "tel", "order.phone"},
}

var orderExamFields = []formField{
	{orderform.FieldExamType, "select", "order.examType"},
	{orderform.FieldQuantity, "number", "order.quantity"},
	{orderform.FieldExamDate, "date", "order.examDate"},
	{orderform.FieldDeliveryDate, "date", "order.deliveryDate"},
	{orderform.FieldAdditionalNotes, "textarea", "order.additionalNotes"},
}

var contactFields = []formField{
	{orderform.ContactFieldName, "text", "contact.name"},
	{orderform.ContactFieldInstitution, "text", "contact.institution"},
	{orderform.ContactFieldEmail, "email", "contact.email"},
	{orderform.ContactFieldPhone, "tel", "contact.phone"},
	{orderform.ContactFieldMessage, "textarea", "contact.message"},
}

func writeField(hw *htmlWriter, f formField, view FormView) {
	value := view.Values[f.name]
	errKey, invalid := view.Errors[f.name]

	hw.Raw(`<div class="field">` + "\n<label")
	hw.Attr("for", f.name)
	hw.Raw(">")
	hw.t(f.labelKey)
	hw.Raw("</label>\n")

	switch f.input {
	case "select":
		hw.Raw("<select")
		hw.Attr("id", f.name)
		hw.Attr("name", f.name)
		hw.Raw(">\n<option value=\"\">")
		hw.t("order.examType.placeholder")
		hw.Raw("</option>\n")
		for _, et := range models.ExamTypes {
			hw.Raw("<option")
			hw.Attr("value", string(et))
			if string(et) == value {
				hw.Raw(" selected")
			}
			hw.Raw(">")
			hw.t(et.LabelKey())
			hw.Raw("</option>\n")
		}
		hw.Raw("</select>\n")
	case "textarea":
		hw.Raw("<textarea")
		hw.Attr("id", f.name)
		hw.Attr("name", f.name)
		if f.name == orderform.FieldAdditionalNotes {
			hw.Attr("placeholder", hw.dict.Lookup("order.additionalNotes.placeholder"))
		}
		hw.Raw(">")
		hw.Text(value)
		hw.Raw("</textarea>\n")
	default:
		hw.Raw("<input")
		hw.Attr("type", f.input)
		hw.Attr("id", f.name)
		hw.Attr("name", f.name)
		hw.Attr("value", value)
		if f.input == "number" {
			hw.Raw(` min="1"`)
		}
		hw.Raw(">\n")
	}

	if invalid {
		hw.Raw(`<p class="error"`)
		hw.Attr("id", f.name+"-error")
		hw.Raw(">")
		hw.t(errKey)
		hw.Raw("</p>\n")
	}
	hw.Raw("</div>\n")
}

// OrderPage renders the order form, or the confirmation panel once submitted.
func OrderPage(view FormView) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("order.title", "order.subtitle")

		if view.Submitted {
			hw.Raw(`<section class="order-success">` + "\n")
			hw.element("h2", "", "order.success.title")
			hw.element("p", "", "order.success.message")
			hw.link("/order/new", "button primary", "order.newOrder")
			hw.Raw("\n</section>\n")
			return
		}

		hw.Raw(`<form class="order-form" method="post" action="/order" novalidate`)
		hw.Attr("onsubmit", submitGuard)
		hw.Raw(">\n")
		if view.Token != "" {
			hw.Raw(`<input type="hidden"`)
			hw.Attr("name", OrderTokenField)
			hw.Attr("value", view.Token)
			hw.Raw(">\n")
		}
		hw.element("h2", "", "order.form.title")
		hw.Raw("<fieldset>\n")
		hw.element("legend", "", "order.section.institution")
		for _, f := range orderInstitutionFields {
			writeField(hw, f, view)
		}
		hw.Raw("</fieldset>\n<fieldset>\n")
		hw.element("legend", "", "order.section.exam")
		for _, f := range orderExamFields {
			writeField(hw, f, view)
		}
		hw.Raw("</fieldset>\n")
		hw.Raw(`<button type="submit" class="button primary"`)
		hw.Attr("data-submitting", hw.dict.Lookup("order.submitting"))
		hw.Raw(">")
		hw.t("order.submit")
		hw.Raw("</button>\n</form>\n")

		hw.Raw(`<aside class="order-info">` + "\n")
		hw.element("h2", "", "order.info.title")
		hw.element("p", "", "order.info.description")
		hw.element("h3", "", "order.info.process")
		hw.Raw("<ol>\n")
		for _, key := range []string{"order.info.step1", "order.info.step2", "order.info.step3", "order.info.step4"} {
			hw.element("li", "", key)
		}
		hw.Raw("</ol>\n")
		hw.element("h2", "", "order.whatsapp.title")
		hw.element("p", "", "order.whatsapp.description")
		hw.link(WhatsAppURL, "button", "order.whatsapp.button")
		hw.Raw("\n</aside>\n")
	})
}

// ContactPage renders the inquiry form, or the thank-you note once submitted.
func ContactPage(view FormView) templ.Component {
	return body(func(hw *htmlWriter) {
		hw.sectionHeader("contact.title", "contact.subtitle")

		if view.Submitted {
			hw.element("p", "contact-success", "contact.success")
			return
		}

		hw.Raw(`<form class="contact-form" method="post" action="/contact" novalidate>` + "\n")
		for _, f := range contactFields {
			writeField(hw, f, view)
		}
		hw.Raw(`<button type="submit" class="button primary">`)
		hw.t("contact.submit")
		hw.Raw("</button>\n</form>\n")
	})
}
