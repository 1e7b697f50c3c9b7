package main

import "context"

// addAdmin updates or creates an admin account.
func (cli *commandLine) addAdmin(uname, email, pwd string) error {
	_, err := cli.acctSvc.AddAdmin(context.Background(), uname, email, pwd)
	return err
}
