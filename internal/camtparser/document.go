package camtparser

import (
	"encoding/xml"
	"strings"

	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
)

// camtDocument models the subset of the camt.053 schema this parser reads.
type camtDocument struct {
	XMLName       xml.Name `xml:"Document"`
	BkToCstmrStmt struct {
		Stmt []camtStatement `xml:"Stmt"`
	} `xml:"BkToCstmrStmt"`
}

type camtStatement struct {
	ID   string `xml:"Id"`
	Acct struct {
		ID struct {
			IBAN string `xml:"IBAN"`
		} `xml:"Id"`
		Ccy string `xml:"Ccy"`
	} `xml:"Acct"`
	Ntry []camtEntry `xml:"Ntry"`
}

type camtEntry struct {
	NtryRef   string     `xml:"NtryRef"`
	Amt       camtAmount `xml:"Amt"`
	CdtDbtInd string     `xml:"CdtDbtInd"`
	Sts       string     `xml:"Sts"`
	BookgDt   struct {
		Dt string `xml:"Dt"`
	} `xml:"BookgDt"`
	AddtlNtryInf string `xml:"AddtlNtryInf"`
	NtryDtls     struct {
		TxDtls []camtTxDetails `xml:"TxDtls"`
	} `xml:"NtryDtls"`
}

type camtAmount struct {
	Text string `xml:",chardata"`
	Ccy  string `xml:"Ccy,attr"`
}

type camtTxDetails struct {
	RltdPties struct {
		Dbtr struct {
			Nm string `xml:"Nm"`
		} `xml:"Dbtr"`
		DbtrAcct camtAccountRef `xml:"DbtrAcct"`
		Cdtr     struct {
			Nm string `xml:"Nm"`
		} `xml:"Cdtr"`
		CdtrAcct camtAccountRef `xml:"CdtrAcct"`
	} `xml:"RltdPties"`
	RmtInf struct {
		Ustrd []string `xml:"Ustrd"`
	} `xml:"RmtInf"`
}

type camtAccountRef struct {
	ID struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
}

// description joins the entry's remittance lines, falling back to the
// additional entry info line.
func (e camtEntry) description() string {
	for _, details := range e.NtryDtls.TxDtls {
		if len(details.RmtInf.Ustrd) > 0 {
			return strings.TrimSpace(strings.Join(details.RmtInf.Ustrd, " "))
		}
	}
	return strings.TrimSpace(e.AddtlNtryInf)
}

// counterparty returns the other party's name: the creditor for outgoing
// money, the debtor for incoming.
func (e camtEntry) counterparty(txType models.TransactionType) string {
	if len(e.NtryDtls.TxDtls) == 0 {
		return ""
	}
	parties := e.NtryDtls.TxDtls[0].RltdPties
	if txType == models.TypeDebit {
		return strings.TrimSpace(parties.Cdtr.Nm)
	}
	return strings.TrimSpace(parties.Dbtr.Nm)
}

// counterpartyIBAN returns the other party's account IBAN when present.
func (e camtEntry) counterpartyIBAN(txType models.TransactionType) string {
	if len(e.NtryDtls.TxDtls) == 0 {
		return ""
	}
	parties := e.NtryDtls.TxDtls[0].RltdPties
	if txType == models.TypeDebit {
		return parties.CdtrAcct.ID.IBAN
	}
	return parties.DbtrAcct.ID.IBAN
}
