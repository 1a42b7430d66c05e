package content

import "grlla/internal/i18n"

var faqItems = []FAQItem{
	{
		Question: i18n.Text{En: "What is included in the training program?", Ar: "ما الذي يتضمنه برنامج التدريب؟"},
		Answer:   i18n.Text{En: "The program includes customized nutrition plans, workout routines, cardio and abs exercises, and continuous follow-up support.", Ar: "يتضمن البرنامج خطط تغذية مخصصة، روتين تمارين، تمارين كارديو وبطن، ودعم متابعة مستمر."},
	},
	{
		Question: i18n.Text{En: "How often will my plan be updated?", Ar: "كم مرة سيتم تحديث خطتي؟"},
		Answer:   i18n.Text{En: "Your plan will be updated every 10-15 days based on your progress and results.", Ar: "سيتم تحديث خطتك كل 10-15 يومًا بناءً على تقدمك ونتائجك."},
	},
	{
		Question: i18n.Text{En: "Can I train at home or do I need a gym?", Ar: "هل يمكنني التدريب في المنزل أم أحتاج إلى صالة رياضية؟"},
		Answer:   i18n.Text{En: "The program can be customized for both home and gym training based on your preference and available equipment.", Ar: "يمكن تخصيص البرنامج للتدريب في المنزل أو الصالة الرياضية بناءً على تفضيلاتك والمعدات المتاحة."},
	},
	{
		Question: i18n.Text{En: "What is the difference between standard and VIP packages?", Ar: "ما الفرق بين الباقات القياسية وباقات VIP؟"},
		Answer:   i18n.Text{En: "VIP packages include direct phone access, daily calls, and weekly video check-ins for more personalized support.", Ar: "تتضمن باقات VIP الوصول المباشر عبر الهاتف، مكالمات يومية، وفحوصات فيديو أسبوعية لدعم أكثر تخصيصًا."},
	},
}

// RenderFAQ localizes the accordion entries for the given language.
func RenderFAQ(lang string) []FAQView {
	out := make([]FAQView, 0, len(faqItems))
	for _, item := range faqItems {
		out = append(out, FAQView{
			Question: item.Question.In(lang),
			Answer:   item.Answer.In(lang),
		})
	}
	return out
}
