// Command gumble-ping is a minimal demonstration front-end for package
// gumble: it connects to a server, prints the channel tree and user
// roster once ServerSync completes, then disconnects.
package main

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sort"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mumbleclient/gumble/gumble"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		addr     string
		username string
		password string
		insecure bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "gumble-ping",
		Short: "Connect to a Mumble server, print its channel tree and roster, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, username, password, insecure, timeout)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&addr, "server", "localhost:64738", "server address (host:port)")
	cmd.Flags().StringVar(&username, "username", "gumble-ping", "username to authenticate with")
	cmd.Flags().StringVar(&password, "password", "", "server password, if required")
	cmd.Flags().BoolVar(&insecure, "insecure", true, "skip TLS certificate verification")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "connection timeout")

	return cmd
}

func run(addr, username, password string, insecure bool, timeout time.Duration) error {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

	config := gumble.NewConfig()
	config.Username = username
	config.Password = password
	config.Logger = logger

	done := make(chan struct{}, 1)
	config.Attach(&gumble.Listener{
		Connect: func(e *gumble.ConnectEvent) {
			printRoster(e.Client)
			done <- struct{}{}
		},
		TextMessage: func(e *gumble.TextMessageEvent) {
			sender := "server"
			if e.Sender != nil {
				sender = e.Sender.Name
			}
			fmt.Printf("[chat] %s: %s\n", sender, e.Message)
		},
	})

	dialer := &net.Dialer{Timeout: timeout}
	tlsConfig := &tls.Config{InsecureSkipVerify: insecure} //nolint:gosec // demo CLI, --insecure opts in explicitly

	client, err := gumble.DialWithDialer(dialer, addr, config, tlsConfig)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Stop()

	select {
	case <-done:
	case <-time.After(timeout):
		return fmt.Errorf("timed out waiting for server sync")
	}
	return nil
}

func printRoster(client *gumble.Client) {
	root := client.Channels.Root()
	if root == nil {
		fmt.Println("(no root channel yet)")
		return
	}
	usersByChannel := make(map[uint32][]*gumble.User)
	for _, u := range client.Users.All() {
		usersByChannel[u.ChannelID()] = append(usersByChannel[u.ChannelID()], u)
	}
	printChannel(root, 0, usersByChannel)
}

func printChannel(ch *gumble.Channel, depth int, usersByChannel map[uint32][]*gumble.User) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s#%d %s\n", indent, ch.ID, ch.Name)

	users := usersByChannel[ch.ID]
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	for _, u := range users {
		fmt.Printf("%s  - %s\n", indent, u.Name)
	}

	children := ch.Children()
	sort.Slice(children, func(i, j int) bool { return children[i].Position < children[j].Position })
	for _, c := range children {
		printChannel(c, depth+1, usersByChannel)
	}
}
