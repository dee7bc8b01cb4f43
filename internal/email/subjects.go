package email

import "fmt"

const (
	subjectLeadAlertFmt    = "%s NEW %s LEAD - %s (Score: %d)"
	subjectBuyerDossierFmt = "Your Private Buyer's Dossier - %s"
)

func LeadAlertSubject(alert LeadAlert) string {
	return fmt.Sprintf(subjectLeadAlertFmt, alert.Emoji, alert.CategoryLabel, alert.PropertyAddress, alert.Total)
}

func BuyerDossierSubject(dossier BuyerDossier) string {
	return fmt.Sprintf(subjectBuyerDossierFmt, dossier.ShortAddress)
}
