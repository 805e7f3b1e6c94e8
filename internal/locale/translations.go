package locale

// translations is the static UI string table. Every locale carries the same
// key set.
var translations = map[Locale]map[string]string{
	English: {
		"home":              "Home",
		"about":             "About Us",
		"programs":          "Our Programs",
		"activities":        "Activities",
		"gallery":           "Gallery",
		"donate":            "Donate",
		"contact":           "Contact",
		"donateNow":         "Donate Now",
		"ourMission":        "Our Mission",
		"supportingOrphans": "Supporting orphan children with education, healthcare, and shelter",
		"childrenHelped":    "Children Helped",
		"familiesSupported": "Families Supported",
		"programsRun":       "Programs",
		"yearsServing":      "Years Serving",
		"latestActivities":  "Latest Activities",
		"viewAll":           "View All",
		"testimonials":      "Testimonials",
		"makeADifference":   "Make a Difference Today",
		"joinUs":            "Join us in bringing hope and happiness to orphan children in Palestine.",
		"learnMore":         "Learn More",
		"readMore":          "Read More",
		"ourStory":          "Our Story",
		"missionVision":     "Mission & Vision",
		"ourValues":         "Our Values",
		"team":              "Our Team",
		"achievements":      "Timeline of Achievements",
		"education":         "Education",
		"healthcare":        "Healthcare",
		"shelter":           "Shelter",
		"foodSecurity":      "Food Security",
		"all":               "All",
		"filterBy":          "Filter by category",
		"noActivities":      "No activities found.",
		"noImages":          "No images in gallery.",
		"impactBreakdown":   "Impact Breakdown",
		"bankTransfer":      "Bank Transfer",
		"donationFaq":       "Donation FAQ",
		"sendMessage":       "Send Message",
		"yourName":          "Your Name",
		"yourEmail":         "Email",
		"subject":           "Subject",
		"message":           "Message",
		"officeHours":       "Office Hours",
		"location":          "Location",
		"followUs":          "Follow Us",
		"adminLogin":        "Admin Login",
		"email":             "Email",
		"password":          "Password",
		"login":             "Login",
		"logout":            "Logout",
		"dashboard":         "Dashboard",
		"addActivity":       "Add Activity",
		"editActivity":      "Edit Activity",
		"deleteActivity":    "Delete Activity",
		"addImage":          "Add Image",
		"deleteImage":       "Delete Image",
		"messages":          "Messages",
		"title":             "Title",
		"date":              "Date",
		"category":          "Category",
		"shortDescription":  "Short Description",
		"fullDescription":   "Full Description",
		"caption":           "Caption",
		"save":              "Save",
		"cancel":            "Cancel",
		"delete":            "Delete",
		"confirmDelete":     "Are you sure you want to delete?",
		"organizationName":  "AHPC - Association for Happiness of the Palestinian Child",
		"tagline":           "Supporting orphan children in Palestine",

		// notices
		"notConfigured":       "The site is running in demo mode. Changes cannot be saved.",
		"invalidCredentials":  "Invalid email or password.",
		"signInRequired":      "Please sign in to continue.",
		"messageSent":         "Thank you! Your message has been sent.",
		"fillRequired":        "Please fill in all required fields.",
		"invalidRequest":      "The request could not be processed.",
		"notFound":            "The requested item was not found.",
		"somethingWentWrong":  "Something went wrong. Please try again.",
		"activityCreated":     "Activity created.",
		"activityUpdated":     "Activity updated.",
		"activityDeleted":     "Activity deleted.",
		"imageAdded":          "Image added.",
		"imageDeleted":        "Image deleted.",
		"messageMarkedRead":   "Message marked as read.",
		"messageDeleted":      "Message deleted.",
		"uploadFailed":        "Image upload failed.",
		"imageTooLarge":       "Images must be 5 MB or smaller.",
		"unsupportedLanguage": "Unsupported language.",
	},
	Arabic: {
		"home":              "الرئيسية",
		"about":             "من نحن",
		"programs":          "برامجنا",
		"activities":        "الأنشطة",
		"gallery":           "معرض الصور",
		"donate":            "التبرع",
		"contact":           "اتصل بنا",
		"donateNow":         "تبرع الآن",
		"ourMission":        "مهمتنا",
		"supportingOrphans": "دعم الأطفال الأيتام بالتعليم والرعاية الصحية والمأوى",
		"childrenHelped":    "طفل تم مساعدتهم",
		"familiesSupported": "عائلة مدعومة",
		"programsRun":       "برنامج",
		"yearsServing":      "سنوات خدمة",
		"latestActivities":  "أحدث الأنشطة",
		"viewAll":           "عرض الكل",
		"testimonials":      "شهادات",
		"makeADifference":   "اصنع فرقاً اليوم",
		"joinUs":            "انضم إلينا في إحضار الأمل والسعادة لأطفال فلسطين الأيتام.",
		"learnMore":         "اعرف المزيد",
		"readMore":          "اقرأ المزيد",
		"ourStory":          "قصتنا",
		"missionVision":     "المهمة والرؤية",
		"ourValues":         "قيمنا",
		"team":              "فريقنا",
		"achievements":      "إنجازاتنا",
		"education":         "التعليم",
		"healthcare":        "الرعاية الصحية",
		"shelter":           "المأوى",
		"foodSecurity":      "الأمن الغذائي",
		"all":               "الكل",
		"filterBy":          "تصفية حسب الفئة",
		"noActivities":      "لا توجد أنشطة.",
		"noImages":          "لا توجد صور في المعرض.",
		"impactBreakdown":   "تفصيل التأثير",
		"bankTransfer":      "التحويل البنكي",
		"donationFaq":       "أسئلة التبرع",
		"sendMessage":       "إرسال رسالة",
		"yourName":          "اسمك",
		"yourEmail":         "البريد الإلكتروني",
		"subject":           "الموضوع",
		"message":           "الرسالة",
		"officeHours":       "ساعات العمل",
		"location":          "الموقع",
		"followUs":          "تابعنا",
		"adminLogin":        "تسجيل دخول المشرف",
		"email":             "البريد الإلكتروني",
		"password":          "كلمة المرور",
		"login":             "تسجيل الدخول",
		"logout":            "تسجيل الخروج",
		"dashboard":         "لوحة التحكم",
		"addActivity":       "إضافة نشاط",
		"editActivity":      "تعديل النشاط",
		"deleteActivity":    "حذف النشاط",
		"addImage":          "إضافة صورة",
		"deleteImage":       "حذف الصورة",
		"messages":          "الرسائل",
		"title":             "العنوان",
		"date":              "التاريخ",
		"category":          "الفئة",
		"shortDescription":  "وصف قصير",
		"fullDescription":   "الوصف الكامل",
		"caption":           "التسمية",
		"save":              "حفظ",
		"cancel":            "إلغاء",
		"delete":            "حذف",
		"confirmDelete":     "هل أنت متأكد من الحذف؟",
		"organizationName":  "جمعية إسعاد الطفل الفلسطيني",
		"tagline":           "دعم الأطفال الأيتام في فلسطين",

		// notices
		"notConfigured":       "الموقع يعمل في الوضع التجريبي. لا يمكن حفظ التغييرات.",
		"invalidCredentials":  "البريد الإلكتروني أو كلمة المرور غير صحيحة.",
		"signInRequired":      "يرجى تسجيل الدخول للمتابعة.",
		"messageSent":         "شكراً لك! تم إرسال رسالتك.",
		"fillRequired":        "يرجى ملء جميع الحقول المطلوبة.",
		"invalidRequest":      "تعذر معالجة الطلب.",
		"notFound":            "العنصر المطلوب غير موجود.",
		"somethingWentWrong":  "حدث خطأ ما. يرجى المحاولة مرة أخرى.",
		"activityCreated":     "تم إنشاء النشاط.",
		"activityUpdated":     "تم تحديث النشاط.",
		"activityDeleted":     "تم حذف النشاط.",
		"imageAdded":          "تمت إضافة الصورة.",
		"imageDeleted":        "تم حذف الصورة.",
		"messageMarkedRead":   "تم تعليم الرسالة كمقروءة.",
		"messageDeleted":      "تم حذف الرسالة.",
		"uploadFailed":        "فشل رفع الصورة.",
		"imageTooLarge":       "يجب ألا يتجاوز حجم الصورة 5 ميغابايت.",
		"unsupportedLanguage": "لغة غير مدعومة.",
	},
}
