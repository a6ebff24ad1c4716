package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/xaenox/legal-assistant/internal/models"
)

type rule struct {
	keywords []string
	advice   Advice
}

// Rules are evaluated in order; the first rule with a matching keyword wins.
var rules = []rule{
	{
		keywords: []string{"marriage", "divorce", "family", "custody"},
		advice: Advice{
			Response:   "Under the Hindu Marriage Act, 1955, marriage is considered a sacred bond between two individuals. For divorce proceedings, you can file under Section 13 which lists grounds including cruelty, desertion, conversion, mental disorder, etc. The process involves filing a petition in the family court with jurisdiction. Both mutual consent divorce (Section 13B) and contested divorce options are available. You'll need to provide evidence supporting your grounds and follow the mandatory waiting period of 6 months for mutual consent cases.",
			Category:   models.CategoryFamily,
			Confidence: 88,
			Disclaimer: Disclaimer,
		},
	},
	{
		keywords: []string{"property", "land", "real estate", "registration"},
		advice: Advice{
			Response:   "Property registration in India is governed by the Registration Act, 1908. For property transactions, you must register the sale deed with the Sub-Registrar office in the jurisdiction where the property is located. Required documents include title deeds, NOC from society/builder, property tax receipts, and identity proofs. Stamp duty varies by state (typically 3-10% of property value). Registration fees are usually 1% of property value. Ensure proper verification of title documents and encumbrance certificate before purchase.",
			Category:   models.CategoryProperty,
			Confidence: 92,
			Disclaimer: Disclaimer,
		},
	},
	{
		keywords: []string{"job", "employment", "salary", "workplace", "epf"},
		advice: Advice{
			Response:   "Under Indian Labour laws, employees have several protections and rights. The Payment of Wages Act ensures timely salary payment, while the Employees' Provident Fund (EPF) Act provides retirement benefits. For workplace harassment, the Sexual Harassment of Women at Workplace Act, 2013 mandates Internal Complaints Committees. Termination requires proper notice as per Industrial Disputes Act. Maternity benefits are covered under the Maternity Benefit Act, providing 26 weeks paid leave. Always maintain documentation of employment terms, salary slips, and any workplace incidents.",
			Category:   models.CategoryEmployment,
			Confidence: 90,
			Disclaimer: Disclaimer,
		},
	},
	{
		keywords: []string{"criminal", "police", "arrest", "bail", "charge"},
		advice: Advice{
			Response:   "Under the Indian Penal Code (IPC), criminal offenses are categorized as cognizable/non-cognizable and bailable/non-bailable. For any criminal charges, you have the right to legal representation and bail (except in specific cases). The Code of Criminal Procedure (CrPC) governs the process. If falsely accused, gather evidence and witnesses for your defense. For filing complaints, approach the nearest police station or magistrate. Remember that confession before police is not admissible in court under Section 25 of Indian Evidence Act.",
			Category:   models.CategoryCriminal,
			Confidence: 87,
			Disclaimer: Disclaimer,
		},
	},
	{
		keywords: []string{"business", "company", "gst", "startup", "incorporation"},
		advice: Advice{
			Response:   "Business incorporation in India is governed by the Companies Act, 2013. For Private Limited Companies, you need minimum 2 directors and 2 shareholders. Required documents include DIN, DSC, and MOA/AOA. GST registration is mandatory if annual turnover exceeds ₹40 lakhs (₹10 lakhs for services). Comply with ROC filings, maintain statutory registers, and file annual returns. For contracts, ensure proper stamp duty payment and registration where required. Consider intellectual property protection for your business assets.",
			Category:   models.CategoryBusiness,
			Confidence: 93,
			Disclaimer: Disclaimer,
		},
	},
	{
		keywords: []string{"consumer", "defective", "refund", "complaint", "product"},
		advice: Advice{
			Response:   "The Consumer Protection Act, 2019 provides comprehensive protection against defective goods and deficient services. You can file complaints in Consumer Courts - District, State, or National level based on claim value. The Act covers e-commerce transactions and provides for product liability. For complaints up to ₹20 lakhs, approach District Consumer Disputes Redressal Commission. Remedies include replacement, refund, compensation, and discontinuation of unfair trade practices. Keep purchase receipts, warranty cards, and communication records as evidence.",
			Category:   models.CategoryConsumer,
			Confidence: 91,
			Disclaimer: Disclaimer,
		},
	},
}

var defaultAdvice = Advice{
	Response:   "Thank you for your legal question. This appears to be a matter that requires careful consideration of Indian legal provisions. Based on Indian law, such matters typically involve specific statutory procedures and documentation requirements. The resolution would depend on various factors including jurisdiction, applicable statutes, and specific circumstances of your case. I recommend gathering all relevant documents and evidence related to your matter.",
	Category:   models.CategoryGeneral,
	Confidence: 85,
	Disclaimer: Disclaimer,
}

// Match picks the canned answer for question by keyword.
func Match(question string) Advice {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(q, keyword) {
				return r.advice
			}
		}
	}
	return defaultAdvice
}

// KeywordAdvisor answers from the canned responses, after an optional
// delay that mimics a remote call.
type KeywordAdvisor struct {
	delay time.Duration
}

func NewKeywordAdvisor(delay time.Duration) *KeywordAdvisor {
	return &KeywordAdvisor{delay: delay}
}

func (a *KeywordAdvisor) Advise(ctx context.Context, question string) Advice {
	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return Match(question)
}
