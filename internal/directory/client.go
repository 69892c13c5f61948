package directory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/mkellner/spmirror/internal/logging"
)

// computerFilter matches computer objects only
const computerFilter = "(&(objectCategory=computer)(objectClass=computer))"

// pageSize for paged directory searches
const pageSize = 500

// accountDisabledFlag is the ACCOUNTDISABLE bit of userAccountControl
const accountDisabledFlag = 0x2

// computerAttributes are the fields projected into the report
var computerAttributes = []string{
	"name",
	"dNSHostName",
	"operatingSystem",
	"operatingSystemVersion",
	"lastLogonTimestamp",
	"userAccountControl",
	"distinguishedName",
}

// Options configures the directory connection
type Options struct {
	// Address is host:port of the directory server
	Address string

	// UseTLS dials ldaps:// instead of ldap://
	UseTLS bool

	BindDN       string
	BindPassword string
}

// Client queries the directory service
type Client struct {
	conn   *ldap.Conn
	logger logging.Logger
}

// Dial connects and binds to the directory server
func Dial(opts Options, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	scheme := "ldap"
	if opts.UseTLS {
		scheme = "ldaps"
	}
	conn, err := ldap.DialURL(fmt.Sprintf("%s://%s", scheme, opts.Address))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory server: %w", err)
	}

	if opts.BindDN != "" {
		if err := conn.Bind(opts.BindDN, opts.BindPassword); err != nil {
			conn.Close()
			return nil, fmt.Errorf("directory bind failed: %w", err)
		}
	}

	return &Client{conn: conn, logger: logger}, nil
}

// Close terminates the directory connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// ListComputers enumerates computer objects under baseDN, paged
func (c *Client) ListComputers(baseDN string) ([]Computer, error) {
	request := ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0, 0, false,
		computerFilter,
		computerAttributes,
		nil,
	)

	result, err := c.conn.SearchWithPaging(request, pageSize)
	if err != nil {
		return nil, fmt.Errorf("computer search failed: %w", err)
	}

	computers := make([]Computer, 0, len(result.Entries))
	for _, entry := range result.Entries {
		computers = append(computers, computerFromEntry(entry))
	}

	c.logger.Info("Enumerated computer objects",
		logging.F("baseDn", baseDN),
		logging.F("count", len(computers)),
	)
	return computers, nil
}

// computerFromEntry projects a directory entry into a Computer
func computerFromEntry(entry *ldap.Entry) Computer {
	uac, _ := strconv.ParseInt(entry.GetAttributeValue("userAccountControl"), 10, 64)

	return Computer{
		Name:            entry.GetAttributeValue("name"),
		DNSHostName:     entry.GetAttributeValue("dNSHostName"),
		OperatingSystem: entry.GetAttributeValue("operatingSystem"),
		OSVersion:       entry.GetAttributeValue("operatingSystemVersion"),
		Enabled:         uac&accountDisabledFlag == 0,
		LastLogon:       filetimeToTime(entry.GetAttributeValue("lastLogonTimestamp")),
		DN:              entry.DN,
	}
}

// filetimeToTime converts a Windows FILETIME attribute value (100ns ticks
// since 1601-01-01) to a Time. Zero or unparseable values map to the zero
// Time, meaning "never logged on".
func filetimeToTime(value string) time.Time {
	ticks, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ticks == 0 {
		return time.Time{}
	}

	// Seconds between 1601-01-01 and the Unix epoch
	const epochDelta = 11644473600

	secs := ticks/1e7 - epochDelta
	nsecs := (ticks % 1e7) * 100
	return time.Unix(secs, nsecs).UTC()
}
