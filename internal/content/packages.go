package content

import "grlla/internal/i18n"

// The three coaching tiers offered on the landing page. Prices are flat EGP
// amounts shown as-is; checkout happens on the external Kashier pages.
var packages = []Package{
	{
		Name:     "SILVER",
		Title:    i18n.Text{En: "SILVER PACKAGE", Ar: "الباقة الفضية"},
		Duration: i18n.Text{En: "3 MONTHS", Ar: "3 أشهر"},
		Price:    "2000 EGP",
		Features: []Feature{
			{
				Icon:        "💬",
				Title:       i18n.Text{En: "Follow-up", Ar: "المتابعة"},
				Description: i18n.Text{En: "Follow-up for 4 days on all inquiries through Whatsapp", Ar: "متابعة لمدة 4 أيام على جميع الاستفسارات عبر واتساب"},
			},
			{
				Icon:        "💪",
				Title:       i18n.Text{En: "Training Program", Ar: "برنامج التدريب"},
				Description: i18n.Text{En: "A customized training program for exercising in the gym or at home explained in videos, changing every 45 days", Ar: "برنامج تدريب مخصص للتمرين في الصالة الرياضية أو المنزل موضح بالفيديو، يتغير كل 45 يومًا"},
			},
			{
				Icon:        "🥗",
				Title:       i18n.Text{En: "Diet Plan", Ar: "خطة النظام الغذائي"},
				Description: i18n.Text{En: "Changing the diet plan to suit your goal every 15 days", Ar: "تغيير خطة النظام الغذائي لتناسب هدفك كل 15 يومًا"},
			},
			{
				Icon:        "🍽️",
				Title:       i18n.Text{En: "Healthy Food", Ar: "طعام صحي"},
				Description: i18n.Text{En: "Healthy Food recipes explained in videos", Ar: "وصفات طعام صحي موضحة بالفيديو"},
			},
			{
				Icon:        "💊",
				Title:       i18n.Text{En: "Nutritional Supplements", Ar: "المكملات الغذائية"},
				Description: i18n.Text{En: "Recommendation and discount on nutritional supplements to reach your goal (optional)", Ar: "توصية وخصم على المكملات الغذائية للوصول إلى هدفك (اختياري)"},
			},
		},
		Link: "https://checkouts.kashier.io/en/paymentpage?ppLink=PP-841576504,live",
	},
	{
		Name:     "GOLD",
		Title:    i18n.Text{En: "GOLD PACKAGE", Ar: "الباقة الذهبية"},
		Duration: i18n.Text{En: "3 MONTHS", Ar: "3 أشهر"},
		Price:    "3000 EGP",
		Popular:  true,
		Features: []Feature{
			{
				Icon:        "💬",
				Title:       i18n.Text{En: "Follow-up", Ar: "المتابعة"},
				Description: i18n.Text{En: "Daily follow-up on all inquiries through Whatsapp", Ar: "متابعة يومية على جميع الاستفسارات عبر واتساب"},
			},
			{
				Icon:        "💪",
				Title:       i18n.Text{En: "Training Program", Ar: "برنامج التدريب"},
				Description: i18n.Text{En: "A customized training program for exercising in the gym or at home explained in videos, changing monthly", Ar: "برنامج تدريب مخصص للتمرين في الصالة الرياضية أو المنزل موضح بالفيديو، يتغير شهريًا"},
			},
			{
				Icon:        "🥗",
				Title:       i18n.Text{En: "Diet Plan", Ar: "خطة النظام الغذائي"},
				Description: i18n.Text{En: "Changing the diet plan to suit your goal every 10 days", Ar: "تغيير خطة النظام الغذائي لتناسب هدفك كل 10 أيام"},
			},
			{
				Icon:        "🍽️",
				Title:       i18n.Text{En: "Healthy Food", Ar: "طعام صحي"},
				Description: i18n.Text{En: "Healthy food recipes explained in videos", Ar: "وصفات طعام صحي موضحة بالفيديو"},
			},
			{
				Icon:        "💊",
				Title:       i18n.Text{En: "Nutritional Supplements", Ar: "المكملات الغذائية"},
				Description: i18n.Text{En: "Recommendation and discount on supplements to reach your goal (optional)", Ar: "توصية وخصم على المكملات للوصول إلى هدفك (اختياري)"},
			},
			{
				Icon:        "📞",
				Title:       i18n.Text{En: "Customer Service", Ar: "خدمة العملاء"},
				Description: i18n.Text{En: "Question from customer service 4 times a month (by phone)", Ar: "استفسار من خدمة العملاء 4 مرات شهريًا (عبر الهاتف)"},
			},
			{
				Icon:        "⚕️",
				Title:       i18n.Text{En: "Medical Team", Ar: "الفريق الطبي"},
				Description: i18n.Text{En: "Follow-up with a medical team, whether for injury rehabilitation or disease treatment", Ar: "متابعة مع فريق طبي، سواء لإعادة تأهيل الإصابات أو علاج الأمراض"},
			},
			{
				Icon:        "❄️",
				Title:       i18n.Text{En: "Freeze Option", Ar: "خيار التجميد"},
				Description: i18n.Text{En: "This package includes the option to freeze the subscription at the customer's request", Ar: "تتضمن هذه الباقة خيار تجميد الاشتراك بناءً على طلب العميل"},
			},
		},
		Link: "https://merchant.kashier.io/en/paypage/PP-841576501?mode=live",
	},
	{
		Name:     "VIP",
		Title:    i18n.Text{En: "VIP PACKAGE", Ar: "الباقة المميزة"},
		Duration: i18n.Text{En: "3 MONTHS", Ar: "3 أشهر"},
		Price:    "5000 EGP",
		Features: []Feature{
			{
				Icon:        "💬",
				Title:       i18n.Text{En: "Follow-up", Ar: "المتابعة"},
				Description: i18n.Text{En: "Daily follow-up on all inquiries", Ar: "متابعة يومية على جميع الاستفسارات"},
			},
			{
				Icon:        "💪",
				Title:       i18n.Text{En: "Training Program", Ar: "برنامج التدريب"},
				Description: i18n.Text{En: "A customized training program for exercising in the gym or at home explained in videos, changing every 3 weeks", Ar: "برنامج تدريب مخصص للتمرين في الصالة الرياضية أو المنزل موضح بالفيديو، يتغير كل 3 أسابيع"},
			},
			{
				Icon:        "🥗",
				Title:       i18n.Text{En: "Diet Plan", Ar: "خطة النظام الغذائي"},
				Description: i18n.Text{En: "A weekly change in the diet plan to suit your goal", Ar: "تغيير أسبوعي في خطة النظام الغذائي لتناسب هدفك"},
			},
			{
				Icon:        "🍽️",
				Title:       i18n.Text{En: "Healthy Food", Ar: "طعام صحي"},
				Description: i18n.Text{En: "Healthy Food recipes explained in videos", Ar: "وصفات طعام صحي موضحة بالفيديو"},
			},
			{
				Icon:        "💊",
				Title:       i18n.Text{En: "Nutritional Supplements", Ar: "المكملات الغذائية"},
				Description: i18n.Text{En: "Recommendation and discount on nutritional supplements to reach your goal (optional)", Ar: "توصية وخصم على المكملات الغذائية للوصول إلى هدفك (اختياري)"},
			},
			{
				Icon:        "📞",
				Title:       i18n.Text{En: "Customer Service", Ar: "خدمة العملاء"},
				Description: i18n.Text{En: "Question from customer service 6 times a month", Ar: "استفسار من خدمة العملاء 6 مرات شهريًا"},
			},
			{
				Icon:        "⚕️",
				Title:       i18n.Text{En: "Medical Team", Ar: "الفريق الطبي"},
				Description: i18n.Text{En: "Follow-up with a medical team, whether for injury rehabilitation or disease treatment", Ar: "متابعة مع فريق طبي، سواء لإعادة تأهيل الإصابات أو علاج الأمراض"},
			},
			{
				Icon:        "👤",
				Title:       i18n.Text{En: "Customer Service Responsible", Ar: "مسؤول خدمة العملاء"},
				Description: i18n.Text{En: "A number of a person from customer service responsible for maintaining the quality of follow-up during the subscription period", Ar: "رقم شخص من خدمة العملاء مسؤول عن الحفاظ على جودة المتابعة خلال فترة الاشتراك"},
			},
			{
				Icon:        "🦍",
				Title:       i18n.Text{En: "Captain GRLLA", Ar: "كابتن جريلا"},
				Description: i18n.Text{En: "Captain GRLLA's personal number for any urgent inquiries", Ar: "رقم كابتن جريلا الشخصي لأي استفسارات عاجلة"},
			},
			{
				Icon:        "💻",
				Title:       i18n.Text{En: "Zoom Meeting", Ar: "اجتماع زووم"},
				Description: i18n.Text{En: "4 Zoom meetings during the month (30 minutes)", Ar: "4 اجتماعات زووم خلال الشهر (30 دقيقة)"},
			},
			{
				Icon:        "🏋️",
				Title:       i18n.Text{En: "Workout With Captain", Ar: "تمرين مع الكابتن"},
				Description: i18n.Text{En: "A workout with Captain GRLLA during your training period", Ar: "تمرين مع كابتن جريلا خلال فترة تدريبك"},
			},
			{
				Icon:        "🏆",
				Title:       i18n.Text{En: "Competition Prep", Ar: "التحضير للمسابقات"},
				Description: i18n.Text{En: "Preparing for tournaments and training on positions", Ar: "التحضير للبطولات والتدريب على الأوضاع"},
			},
		},
		Link: "https://merchant.kashier.io/en/paypage/PP-841576502?mode=live",
	},
}

// RenderPackages localizes all tiers for the given language.
func RenderPackages(lang string) []PackageView {
	out := make([]PackageView, 0, len(packages))
	for _, p := range packages {
		features := make([]FeatureView, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, FeatureView{
				Icon:        f.Icon,
				Title:       f.Title.In(lang),
				Description: f.Description.In(lang),
			})
		}
		out = append(out, PackageView{
			Name:     p.Name,
			Title:    p.Title.In(lang),
			Duration: p.Duration.In(lang),
			Price:    p.Price,
			Popular:  p.Popular,
			Features: features,
			Link:     p.Link,
		})
	}
	return out
}
