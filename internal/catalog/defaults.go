package catalog

// Contact details shared by the canned responses.
const (
	ContactEmail = "info@circuitstrategies.com"
	ContactPhone = "+1 (888) 483-7122"
)

// defaultCategories is the canonical keyword table. Order matters: a later
// category only answers when no earlier one matched.
var defaultCategories = []Category{
	{
		ID:       "services",
		Keywords: []string{"service", "offer", "what do you do", "solutions"},
		Response: "We offer comprehensive AI solutions including AI Chatbots, Voice Agents, Process Automation, " +
			"Sales & Marketing AI, and Ethical AI Consulting. Each service is designed to transform your " +
			"business operations and drive growth.",
	},
	{
		ID:       "chatbots",
		Keywords: []string{"chatbot", "chat bot", "virtual assistant"},
		Response: "Our AI Chatbots go beyond simple scripts. They engage customers in real time with 24/7 " +
			"personalized support, multi-language conversations, CRM and e-commerce integrations, and a " +
			"seamless handoff to a live agent when a human touch is needed.",
	},
	{
		ID:       "voice-agents",
		Keywords: []string{"voice", "call center", "phone agent", "speech"},
		Response: "Our AI Voice Agents answer calls around the clock with natural speech recognition, " +
			"sentiment analysis and call analytics. They work across phone, chat and digital channels and " +
			"are built with privacy safeguards for standards such as GDPR and HIPAA.",
	},
	{
		ID:       "process-automation",
		Keywords: []string{"automat", "workflow", "repetitive task", "rpa"},
		Response: "Process Automation removes repetitive work from your teams: invoice processing, onboarding, " +
			"ticket routing, inventory tracking and more. Our automations integrate with your CRMs, ERPs and " +
			"cloud platforms and come with real-time monitoring.",
	},
	{
		ID:       "sales-marketing",
		Keywords: []string{"sales", "marketing", "lead", "campaign", "conversion"},
		Response: "Our Sales & Marketing AI covers lead scoring, campaign optimization, predictive analytics " +
			"and personalized engagement, so your team spends its time on the opportunities most likely " +
			"to convert.",
	},
	{
		ID:       "ethical-ai",
		Keywords: []string{"ethic", "responsible", "bias", "fairness", "trust"},
		Response: "Ethical AI is at the core of everything we do. We provide AI Audits & Certification, " +
			"Governance & Compliance guidance, Security & Risk Assessment, and ensure all AI solutions are " +
			"transparent, fair, and aligned with your values.",
	},
	{
		ID:       "regulations",
		Keywords: []string{"regulation", "compliance", "gdpr", "legal", "aida"},
		Response: "We help you navigate AI regulations such as GDPR, Canada's AIDA and the U.S. AI Bill of " +
			"Rights with compliance guidance, risk assessments, policy design, readiness audits and " +
			"continuous monitoring of legal changes.",
	},
	{
		ID:       "insights",
		Keywords: []string{"insight", "trend", "forecast", "future of ai"},
		Response: "Our AI Insights program keeps you ahead of the curve with trend analysis, strategic " +
			"advisory, competitive intelligence, and workshops for your leadership and technical teams.",
	},
	{
		ID:       "pricing",
		Keywords: []string{"price", "pricing", "cost", "quote", "budget", "how much"},
		Response: "Every engagement is tailored, so pricing depends on the scope of your project. " +
			"Book a free consultation and we will prepare a quote that fits your goals and budget.\n" +
			"Email " + ContactEmail + " or call " + ContactPhone + ".",
	},
	{
		ID:       "contact",
		Keywords: []string{"contact", "email", "phone", "reach you", "call you", "address"},
		Response: "You can reach our team at " + ContactEmail + " or on our toll-free number " +
			ContactPhone + ". You can also use the contact form on this page and we will get back to " +
			"you within 24 hours.",
	},
	{
		ID:       "consultation",
		Keywords: []string{"consult", "meeting", "schedule", "book", "demo", "get started"},
		Response: "We would love to talk! Schedule a free consultation through the contact form below, or " +
			"email " + ContactEmail + " and we will find a time that works for you.",
	},
	{
		ID:       "business-value",
		Keywords: []string{"help my business", "help our business", "benefit", "roi", "why ai"},
		Response: "AI can revolutionize your business by automating repetitive tasks, providing 24/7 customer " +
			"support, improving decision-making with data insights, personalizing customer experiences, and " +
			"optimizing operations for better efficiency and growth.",
	},
}
