package i18n

var arabic = map[string]string{
	"nav.home":                         "الرئيسية",
	"nav.about":                        "من نحن",
	"nav.services":                     "خدماتنا",
	"nav.testimonials":                 "الشهادات",
	"nav.partners":                     "الشركاء",
	"nav.contact":                      "اتصل بنا",
	"nav.faq":                          "الأسئلة الشائعة",
	"nav.order":                        "طلب الامتحانات",
	"hero.title":                       "حلول تقييم تعليمية موثوقة لجنوب السودان",
	"hero.subtitle":                    "تمكين المؤسسات من خلال امتحانات آمنة وعالية الجودة تحافظ على النزاهة الأكاديمية وتدعم التميز التعليمي.",
	"hero.cta":                         "اتصل بنا اليوم",
	"hero.learn":                       "اعرف المزيد",
	"about.title":                      "عن جينيسيس للامتحانات",
	"about.subtitle":                   "المزود الرائد للتقييمات التعليمية الآمنة في جنوب السودان",
	"about.mission.title":              "مهمتنا",
	"about.mission.text":               "تزويد المؤسسات التعليمية في جميع أنحاء جنوب السودان بخدمات امتحانات موثوقة وآمنة ومُدارة باحترافية تلتزم بأعلى معايير النزاهة الأكاديمية.",
	"about.values.title":               "قيمنا",
	"about.values.integrity":           "النزاهة",
	"about.values.integrity.text":      "نحافظ على أعلى معايير أمن الامتحانات والصدق الأكاديمي.",
	"about.values.quality":             "الجودة",
	"about.values.quality.text":        "يتم إعداد كل تقييم بعناية لتلبية المعايير التعليمية.",
	"about.values.trust":               "الثقة",
	"about.values.trust.text":          "تعتمد المدارس علينا لتقديم خدمات امتحانات متسقة واحترافية.",
	"about.team.title":                 "تعرف على فريقنا",
	"about.team.subtitle":              "محترفون متخصصون ملتزمون بالتميز التعليمي في جنوب السودان",
	"about.team.member1.name":          "جيمس أكوت دينق",
	"about.team.member1.role":          "الرئيس التنفيذي",
	"about.team.member1.bio":           "أكثر من 20 عاماً من الخبرة في القيادة التعليمية، شغل سابقاً منصب مدير في وزارة التربية.",
	"about.team.member2.name":          "غريس أشول ماين",
	"about.team.member2.role":          "مديرة التعليم",
	"about.team.member2.bio":           "متخصصة في تطوير المناهج مع خبرة في تصميم التقييمات والمعايير التعليمية.",
	"about.team.member3.name":          "بيتر قرنق بول",
	"about.team.member3.role":          "مدير العمليات",
	"about.team.member3.bio":           "يضمن لوجستيات وتسليم الامتحانات بسلاسة عبر مناطق جنوب السودان المتنوعة.",
	"about.team.member4.name":          "سارة نيابول كور",
	"about.team.member4.role":          "رئيسة ضمان الجودة",
	"about.team.member4.bio":           "تحافظ على معايير ونزاهة الامتحانات من خلال عمليات رقابة جودة صارمة.",
	"services.title":                   "خدماتنا",
	"services.subtitle":                "حلول امتحانات شاملة مصممة لتلبية احتياجات مؤسستك",
	"services.exam.title":              "تطوير الامتحانات",
	"services.exam.text":               "تقييمات مصممة خصيصاً ومتوافقة مع معايير المناهج والأهداف التعليمية.",
	"services.admin.title":             "إدارة الامتحانات",
	"services.admin.text":              "مراقبة احترافية ودعم لوجستي لضمان بيئات اختبار عادلة وآمنة.",
	"services.security.title":          "الأمان والنزاهة",
	"services.security.text":           "بروتوكولات أمان متقدمة لحماية محتوى الامتحانات والحفاظ على صحة النتائج.",
	"services.support.title":           "دعم المؤسسات",
	"services.support.text":            "إرشاد واستشارات مخصصة للمدارس طوال عملية الامتحانات.",
	"security.title":                   "أمان مواد الامتحانات",
	"security.message":                 "للحفاظ على نزاهة وصحة تقييماتنا، لا نوفر أوراق امتحانات أو نماذج أو مفاتيح إجابات قابلة للتحميل. هذه السياسة تحمي القيمة التعليمية لامتحاناتنا وتضمن اختباراً عادلاً لجميع الطلاب.",
	"security.cta":                     "اتصل بنا لمزيد من المعلومات حول عمليات الامتحانات الآمنة لدينا.",
	"testimonials.title":               "ماذا تقول المدارس عنا",
	"testimonials.subtitle":            "موثوق من قبل المؤسسات التعليمية في جميع أنحاء جنوب السودان",
	"partners.title":                   "شركاؤنا واعتماداتنا",
	"partners.subtitle":                "التعاون مع المنظمات التعليمية الرائدة",
	"contact.title":                    "تواصل معنا",
	"contact.subtitle":                 "هل أنت مستعد لإحضار امتحانات آمنة واحترافية إلى مؤسستك؟",
	"contact.name":                     "الاسم الكامل",
	"contact.institution":              "اسم المؤسسة",
	"contact.email":                    "البريد الإلكتروني",
	"contact.phone":                    "رقم الهاتف",
	"contact.message":                  "أخبرنا عن احتياجاتك",
	"contact.submit":                   "إرسال الاستفسار",
	"contact.success":                  "شكراً لك! سنتواصل معك خلال 24 ساعة.",
	"contact.error.name":               "يرجى إدخال اسمك الكامل",
	"contact.error.institution":        "يرجى إدخال اسم المؤسسة",
	"contact.error.email":              "يرجى إدخال بريد إلكتروني صحيح",
	"contact.error.phone":              "يرجى إدخال رقم هاتف صحيح",
	"contact.error.message":            "يرجى وصف متطلباتك",
	"faq.title":                        "الأسئلة المتكررة",
	"faq.q1":                           "كيف أطلب امتحانات لمدرستي؟",
	"faq.a1":                           "يمكنك تقديم طلب من خلال صفحة طلب الامتحانات عبر الإنترنت أو الاتصال بنا مباشرة. املأ النموذج بتفاصيل مؤسستك ونوع الامتحان والكمية والتواريخ المفضلة، وسنرشدك خلال الباقي.",
	"faq.q2":                           "ما هي الإجراءات الأمنية التي تحمي مواد الامتحانات؟",
	"faq.a2":                           "نستخدم قنوات توزيع آمنة وأنظمة وصول محكومة وبروتوكولات صارمة لمنع الوصول غير المصرح به لمحتوى الامتحانات.",
	"faq.q3":                           "هل يمكنني رؤية نماذج أسئلة قبل الطلب؟",
	"faq.a3":                           "لا نقدم أوراق نماذج للحفاظ على أمن الاختبارات. ومع ذلك، يمكننا مناقشة توافق المناهج وأشكال الأسئلة أثناء الاستشارة.",
	"faq.q4":                           "بأي لغات تتوفر الامتحانات؟",
	"faq.a4":                           "امتحاناتنا متوفرة باللغة الإنجليزية ويمكن تكييفها للسياقات التعليمية متعددة اللغات.",
	"faq.q5":                           "كم من الوقت مقدماً يجب أن نطلب؟",
	"faq.a5":                           "نوصي بالطلب قبل 6-8 أسابيع على الأقل من تاريخ الامتحان المخطط له لضمان التحضير والتسليم المناسبين.",
	"faq.q6":                           "ماذا يحدث بعد تقديم الطلب؟",
	"faq.a6":                           "بعد التقديم، ستتلقى تأكيداً بالبريد الإلكتروني. سيراجع فريقنا طلبك ويتصل بك خلال 24-48 ساعة مع عرض سعر وتأكيد التفاصيل.",
	"faq.q7":                           "ما طرق الدفع التي تقبلونها؟",
	"faq.a7":                           "نقبل التحويلات البنكية والأموال عبر الهاتف المحمول وأوامر الشراء المؤسسية. سيتم تقديم تفاصيل الدفع بعد تأكيد الطلب.",
	"faq.q8":                           "هل يمكنني تعديل أو إلغاء طلبي؟",
	"faq.a8":                           "نعم، يمكنك طلب تعديلات أو إلغاءات عن طريق الاتصال بنا قبل أسبوعين على الأقل من تاريخ التسليم. قد تؤثر التغييرات على الأسعار والجدول الزمني.",
	"faq.q9":                           "هل تقدمون خصومات للطلبات الكبيرة؟",
	"faq.a9":                           "نعم، نقدم أسعاراً مخفضة للطلبات الكبيرة. اتصل بنا بمتطلباتك وسنقدم لك عرض سعر مخصص.",
	"faq.q10":                          "هل يمكنني الاتصال بكم عبر واتساب للاستفسارات العاجلة؟",
	"faq.a10":                          "بالتأكيد! للأمور العاجلة أو الأسئلة السريعة، يمكنك الوصول إلينا مباشرة عبر واتساب من خلال الرابط في صفحة طلب الامتحانات.",
	"footer.about":                     "جينيسيس للامتحانات هي المزود الموثوق لخدمات التقييم التعليمي الآمنة والاحترافية في جنوب السودان.",
	"footer.quick":                     "روابط سريعة",
	"footer.contact.title":             "معلومات الاتصال",
	"footer.contact.email":             "البريد الإلكتروني: genesisexaminations@gmail.com",
	"footer.contact.phone":             "الهاتف: +211 920 879 329",
	"footer.rights":                    "© {year} جينيسيس للامتحانات. جميع الحقوق محفوظة.",
	"order.title":                      "طلب الامتحانات",
	"order.subtitle":                   "اطلب مواد امتحانات آمنة لمؤسستك",
	"order.form.title":                 "نموذج طلب الامتحانات",
	"order.section.institution":        "تفاصيل المؤسسة",
	"order.section.exam":               "تفاصيل الامتحان",
	"order.institutionName":            "اسم المؤسسة",
	"order.contactName":                "الشخص المسؤول",
	"order.email":                      "البريد الإلكتروني",
	"order.phone":                      "رقم الهاتف",
	"order.examType":                   "نوع الامتحان",
	"order.examType.placeholder":       "اختر نوع الامتحان",
	"order.examType.primary":           "امتحانات المرحلة الابتدائية",
	"order.examType.secondary":         "امتحانات المرحلة الثانوية",
	"order.examType.certificate":       "امتحانات الشهادات",
	"order.examType.custom":            "تقييم مخصص",
	"order.quantity":                   "عدد النسخ",
	"order.examDate":                   "تاريخ الامتحان المخطط",
	"order.deliveryDate":               "تاريخ التسليم المطلوب",
	"order.additionalNotes":            "ملاحظات إضافية",
	"order.additionalNotes.placeholder": "أي متطلبات أو تعليمات خاصة...",
	"order.submit":                     "إرسال الطلب",
	"order.submitting":                 "جاري الإرسال...",
	"order.newOrder":                   "تقديم طلب آخر",
	"order.success.title":              "تم تقديم الطلب بنجاح!",
	"order.success.message":            "لقد تلقينا طلبك وأرسلنا تأكيداً إلى بريدك الإلكتروني. سيتواصل معك فريقنا خلال 24-48 ساعة لتأكيد التفاصيل وتقديم عرض السعر.",
	"order.error.title":                "فشل الطلب",
	"order.error.submit":               "فشل في تقديم الطلب. يرجى المحاولة مرة أخرى أو الاتصال بنا مباشرة.",
	"order.error.institution":          "يرجى إدخال اسم المؤسسة",
	"order.error.contact":              "يرجى إدخال اسم الشخص المسؤول",
	"order.error.email":                "يرجى إدخال بريد إلكتروني صحيح",
	"order.error.phone":                "يرجى إدخال رقم هاتف صحيح",
	"order.error.examType":             "يرجى اختيار نوع الامتحان",
	"order.error.quantity":             "يرجى إدخال كمية صحيحة",
	"order.error.examDate":             "يرجى اختيار تاريخ الامتحان",
	"order.error.deliveryDate":         "يرجى اختيار تاريخ التسليم",
	"order.info.title":                 "كيف يعمل",
	"order.info.description":           "طلب الامتحانات من جينيسيس عملية مباشرة مصممة لضمان حصولك على مواد تقييم آمنة وعالية الجودة في الوقت المحدد.",
	"order.info.process":               "عملية الطلب:",
	"order.info.step1":                 "قدم طلبك من خلال هذا النموذج",
	"order.info.step2":                 "احصل على التأكيد وعرض السعر خلال 24-48 ساعة",
	"order.info.step3":                 "أكد الطلب وأكمل الدفع",
	"order.info.step4":                 "استلم مواد الامتحانات الآمنة قبل تاريخ التسليم",
	"order.whatsapp.title":             "تحتاج مساعدة سريعة؟",
	"order.whatsapp.description":       "للاستفسارات العاجلة أو المساعدة الفورية، اتصل بنا مباشرة عبر واتساب.",
	"order.whatsapp.button":            "الدردشة على واتساب",
	"notfound.title":                   "الصفحة غير موجودة",
	"notfound.message":                 "الصفحة التي تبحث عنها غير موجودة.",
	"notfound.home":                    "العودة إلى الرئيسية",
	"language.toggle":                  "English",
}
