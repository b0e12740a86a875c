package i18n

var english = map[string]string{
	"nav.home":                         "Home",
	"nav.about":                        "About Us",
	"nav.services":                     "Services",
	"nav.testimonials":                 "Testimonials",
	"nav.partners":                     "Partners",
	"nav.contact":                      "Contact",
	"nav.faq":                          "FAQ",
	"nav.order":                        "Order Exams",
	"hero.title":                       "Trusted Educational Assessment Solutions for South Sudan",
	"hero.subtitle":                    "Empowering institutions with secure, high-quality examinations that maintain academic integrity and support educational excellence.",
	"hero.cta":                         "Contact Us Today",
	"hero.learn":                       "Learn More",
	"about.title":                      "About Genesis Examinations",
	"about.subtitle":                   "Leading provider of secure educational assessments in South Sudan",
	"about.mission.title":              "Our Mission",
	"about.mission.text":               "To provide educational institutions across South Sudan with reliable, secure, and professionally administered examination services that uphold the highest standards of academic integrity.",
	"about.values.title":               "Our Values",
	"about.values.integrity":           "Integrity",
	"about.values.integrity.text":      "We maintain the highest standards of exam security and academic honesty.",
	"about.values.quality":             "Quality",
	"about.values.quality.text":        "Every assessment is carefully crafted to meet educational standards.",
	"about.values.trust":               "Trust",
	"about.values.trust.text":          "Schools rely on us to deliver consistent, professional examination services.",
	"about.team.title":                 "Meet Our Team",
	"about.team.subtitle":              "Dedicated professionals committed to educational excellence in South Sudan",
	"about.team.member1.name":          "James Akot Deng",
	"about.team.member1.role":          "Chief Executive Officer",
	"about.team.member1.bio":           "Over 20 years of experience in educational leadership, formerly serving as Director at the Ministry of Education.",
	"about.team.member2.name":          "Grace Achol Mayen",
	"about.team.member2.role":          "Director of Education",
	"about.team.member2.bio":           "Curriculum development specialist with expertise in assessment design and educational standards.",
	"about.team.member3.name":          "Peter Garang Bol",
	"about.team.member3.role":          "Operations Manager",
	"about.team.member3.bio":           "Ensures seamless exam logistics and delivery across South Sudan's diverse regions.",
	"about.team.member4.name":          "Sarah Nyabol Kur",
	"about.team.member4.role":          "Quality Assurance Lead",
	"about.team.member4.bio":           "Maintains examination standards and integrity through rigorous quality control processes.",
	"services.title":                   "Our Services",
	"services.subtitle":                "Comprehensive examination solutions tailored to your institution's needs",
	"services.exam.title":              "Examination Development",
	"services.exam.text":               "Custom-designed assessments aligned with curriculum standards and educational objectives.",
	"services.admin.title":             "Exam Administration",
	"services.admin.text":              "Professional proctoring and logistics support to ensure fair and secure testing environments.",
	"services.security.title":          "Security & Integrity",
	"services.security.text":           "Advanced security protocols to protect exam content and maintain the validity of results.",
	"services.support.title":           "Institutional Support",
	"services.support.text":            "Dedicated guidance and consultation for schools throughout the examination process.",
	"security.title":                   "Exam Material Security",
	"security.message":                 "To maintain the integrity and validity of our assessments, we do not provide downloadable exam papers, samples, or answer keys. This policy protects the educational value of our examinations and ensures fair testing for all students.",
	"security.cta":                     "Contact us for more information about our secure examination processes.",
	"testimonials.title":               "What Schools Say About Us",
	"testimonials.subtitle":            "Trusted by educational institutions across South Sudan",
	"partners.title":                   "Our Partners & Accreditations",
	"partners.subtitle":                "Collaborating with leading educational organizations",
	"contact.title":                    "Get in Touch",
	"contact.subtitle":                 "Ready to bring secure, professional examinations to your institution?",
	"contact.name":                     "Full Name",
	"contact.institution":              "Institution Name",
	"contact.email":                    "Email Address",
	"contact.phone":                    "Phone Number",
	"contact.message":                  "Tell us about your needs",
	"contact.submit":                   "Send Inquiry",
	"contact.success":                  "Thank you! We'll contact you within 24 hours.",
	"contact.error.name":               "Please enter your full name",
	"contact.error.institution":        "Please enter your institution name",
	"contact.error.email":              "Please enter a valid email address",
	"contact.error.phone":              "Please enter a valid phone number",
	"contact.error.message":            "Please describe your requirements",
	"faq.title":                        "Frequently Asked Questions",
	"faq.q1":                           "How do I order examinations for my school?",
	"faq.a1":                           "You can place an order through our online Order Exams page or contact us directly. Fill out the form with your institution details, exam type, quantity, and preferred dates, and we'll guide you through the rest.",
	"faq.q2":                           "What security measures protect exam materials?",
	"faq.a2":                           "We use secure distribution channels, controlled access systems, and strict protocols to prevent unauthorized access to exam content.",
	"faq.q3":                           "Can I see sample questions before ordering?",
	"faq.a3":                           "We don't provide sample papers to maintain test security. However, we can discuss curriculum alignment and question formats during consultation.",
	"faq.q4":                           "What languages are exams available in?",
	"faq.a4":                           "Our examinations are available in English and can be adapted for multilingual educational contexts.",
	"faq.q5":                           "How far in advance should we order?",
	"faq.a5":                           "We recommend ordering at least 6-8 weeks before your planned examination date to ensure proper preparation and delivery.",
	"faq.q6":                           "What happens after I submit an order?",
	"faq.a6":                           "After submission, you'll receive an email confirmation. Our team will review your order and contact you within 24-48 hours with a quote and to confirm details.",
	"faq.q7":                           "What payment methods do you accept?",
	"faq.a7":                           "We accept bank transfers, mobile money, and institutional purchase orders. Payment details will be provided after order confirmation.",
	"faq.q8":                           "Can I modify or cancel my order?",
	"faq.a8":                           "Yes, you can request modifications or cancellations by contacting us at least 2 weeks before the delivery date. Changes may affect pricing and timeline.",
	"faq.q9":                           "Do you offer bulk discounts for large orders?",
	"faq.a9":                           "Yes, we offer discounted rates for bulk orders. Contact us with your requirements and we'll provide a customized quote.",
	"faq.q10":                          "Can I contact you via WhatsApp for urgent inquiries?",
	"faq.a10":                          "Absolutely! For urgent matters or quick questions, you can reach us directly via WhatsApp through the link on our Order Exams page.",
	"footer.about":                     "Genesis Examinations is South Sudan's trusted provider of secure, professional educational assessment services.",
	"footer.quick":                     "Quick Links",
	"footer.contact.title":             "Contact Information",
	"footer.contact.email":             "Email: genesisexaminations@gmail.com",
	"footer.contact.phone":             "Phone: +211 920 879 329",
	"footer.rights":                    "© {year} Genesis Examinations. All rights reserved.",
	"order.title":                      "Order Examinations",
	"order.subtitle":                   "Request secure examination materials for your institution",
	"order.form.title":                 "Examination Order Form",
	"order.section.institution":        "Institution Details",
	"order.section.exam":               "Exam Details",
	"order.institutionName":            "Institution Name",
	"order.contactName":                "Contact Person",
	"order.email":                      "Email Address",
	"order.phone":                      "Phone Number",
	"order.examType":                   "Exam Type",
	"order.examType.placeholder":       "Select exam type",
	"order.examType.primary":           "Primary Level Exams",
	"order.examType.secondary":         "Secondary Level Exams",
	"order.examType.certificate":       "Certificate Exams",
	"order.examType.custom":            "Custom Assessment",
	"order.quantity":                   "Number of Copies",
	"order.examDate":                   "Planned Exam Date",
	"order.deliveryDate":               "Required Delivery Date",
	"order.additionalNotes":            "Additional Notes",
	"order.additionalNotes.placeholder": "Any special requirements or instructions...",
	"order.submit":                     "Submit Order",
	"order.submitting":                 "Submitting...",
	"order.newOrder":                   "Place Another Order",
	"order.success.title":              "Order Submitted Successfully!",
	"order.success.message":            "We have received your order and sent a confirmation to your email. Our team will contact you within 24-48 hours to confirm details and provide a quote.",
	"order.error.title":                "Order Failed",
	"order.error.submit":               "Failed to submit order. Please try again or contact us directly.",
	"order.error.institution":          "Please enter your institution name",
	"order.error.contact":              "Please enter contact person name",
	"order.error.email":                "Please enter a valid email address",
	"order.error.phone":                "Please enter a valid phone number",
	"order.error.examType":             "Please select an exam type",
	"order.error.quantity":             "Please enter a valid quantity",
	"order.error.examDate":             "Please select an exam date",
	"order.error.deliveryDate":         "Please select a delivery date",
	"order.info.title":                 "How It Works",
	"order.info.description":           "Ordering examinations from Genesis is a straightforward process designed to ensure you receive secure, high-quality assessment materials on time.",
	"order.info.process":               "Order Process:",
	"order.info.step1":                 "Submit your order through this form",
	"order.info.step2":                 "Receive confirmation and quote within 24-48 hours",
	"order.info.step3":                 "Confirm order and complete payment",
	"order.info.step4":                 "Receive secure exam materials before your delivery date",
	"order.whatsapp.title":             "Need Quick Assistance?",
	"order.whatsapp.description":       "For urgent inquiries or immediate assistance, contact us directly via WhatsApp.",
	"order.whatsapp.button":            "Chat on WhatsApp",
	"notfound.title":                   "Page Not Found",
	"notfound.message":                 "The page you are looking for does not exist.",
	"notfound.home":                    "Return to Home",
	"language.toggle":                  "العربية",
}
